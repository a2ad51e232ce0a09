// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

package frontend_test

import (
	"errors"
	"image"
	"image/color"

	"github.com/jetsetilly/gpretro/gui"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/userinput"
)

// surface wraps a canvas and counts the drawing operations
type surface struct {
	*gui.Canvas
	fills  int
	blits  int
	scales int
	flips  int
	closed bool
	dst    image.Rectangle
}

func newSurface(width int, height int) *surface {
	return &surface{Canvas: gui.NewCanvas(width, height)}
}

func (s *surface) Fill(col color.Color) {
	s.fills++
	s.Canvas.Fill(col)
}

func (s *surface) Blit(src image.Image, x int, y int) {
	s.blits++
	s.dst = src.Bounds().Add(image.Pt(x, y))
	s.Canvas.Blit(src, x, y)
}

func (s *surface) Scale(src image.Image, dst image.Rectangle) {
	s.scales++
	s.dst = dst
	s.Canvas.Scale(src, dst)
}

func (s *surface) Flip() error {
	s.flips++
	return nil
}

func (s *surface) Close() error {
	s.closed = true
	return nil
}

// events is a queue of input events
type events struct {
	queue []userinput.Event
	acks  int
}

func (ev *events) push(e ...userinput.Event) {
	ev.queue = append(ev.queue, e...)
}

func (ev *events) PollEvent() userinput.Event {
	if len(ev.queue) == 0 {
		return nil
	}
	e := ev.queue[0]
	ev.queue = ev.queue[1:]
	return e
}

func (ev *events) ResizeAck() error {
	ev.acks++
	return nil
}

var errDevice = errors.New("device error")

// device records the samples written to it
type device struct {
	rate      int
	samples   []int16
	writes    int
	fail      bool
	recovered int
	closed    bool
}

func (dev *device) Write(samples []int16) (int, error) {
	dev.writes++
	if dev.fail {
		return 0, errDevice
	}
	dev.samples = append(dev.samples, samples...)
	return len(samples) / 2, nil
}

func (dev *device) Recover(err error) error {
	dev.recovered++
	return nil
}

func (dev *device) Close() error {
	dev.closed = true
	return nil
}

// recorder collects audio in the same way as the wavwriter
type recorder struct {
	rate    int
	samples []int16
	ended   bool
}

func (r *recorder) SetSampleRate(rate int) {
	r.rate = rate
}

func (r *recorder) SetAudio(samples []int16) error {
	r.samples = append(r.samples, samples...)
	return nil
}

func (r *recorder) EndMixing() error {
	r.ended = true
	return nil
}

type portDevice struct {
	port   uint
	device retro.Device
}

// core is a retro.Core that records the calls made to it
type core struct {
	info  retro.SystemInfo
	av    retro.SystemAVInfo
	api   uint
	state []byte

	reject bool
	game   retro.GameInfo

	ports  []portDevice
	steps  int
	onRun  func(step int)
	onLoad func()

	calls       []string
	initialized bool
}

func newCore() *core {
	return &core{
		info: retro.SystemInfo{
			LibraryName:     "test",
			LibraryVersion:  "1.0",
			ValidExtensions: "bin",
		},
		av: retro.SystemAVInfo{
			Geometry: retro.Geometry{BaseWidth: 320, BaseHeight: 240, MaxWidth: 320, MaxHeight: 240},
			Timing:   retro.Timing{FPS: 60, SampleRate: 48000},
		},
		api:         retro.APIVersion,
		initialized: true,
	}
}

func (c *core) SetControllerPortDevice(port uint, device retro.Device) {
	c.ports = append(c.ports, portDevice{port: port, device: device})
}

func (c *core) APIVersion() uint                 { return c.api }
func (c *core) SystemInfo() retro.SystemInfo     { return c.info }
func (c *core) SystemAVInfo() retro.SystemAVInfo { return c.av }
func (c *core) Initialized() bool                { return c.initialized }
func (c *core) SerializeSize() int               { return len(c.state) }
func (c *core) Reset()                           { c.calls = append(c.calls, "reset") }

func (c *core) LoadGame(game retro.GameInfo) bool {
	c.calls = append(c.calls, "load")
	c.game = game
	if c.onLoad != nil {
		c.onLoad()
	}
	return !c.reject
}

func (c *core) UnloadGame() {
	c.calls = append(c.calls, "unload")
}

func (c *core) Run() {
	c.steps++
	if c.onRun != nil {
		c.onRun(c.steps)
	}
}

func (c *core) Serialize(data []byte) bool {
	if len(data) < len(c.state) {
		return false
	}
	copy(data, c.state)
	return true
}

func (c *core) Unserialize(data []byte) bool {
	if len(data) != len(c.state) {
		return false
	}
	copy(c.state, data)
	return true
}

func (c *core) Deinit() {
	c.calls = append(c.calls, "deinit")
	c.initialized = false
}

func (c *core) Close() error {
	c.calls = append(c.calls, "close")
	return nil
}
