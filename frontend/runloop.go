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

package frontend

import (
	"io"
	"os"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
)

// Sentinel error patterns.
const (
	ContentOpenError = "content: cannot open: %v"
	ContentReadError = "content: cannot read: %v"
	ContentRejected  = "content: rejected by core: %s"
	StateError       = "runloop: %s"
	SerialiseError   = "runloop: serialisation: %s"
)

// State of the RunLoop.
type State int

// List of valid State values.
const (
	Unloaded State = iota
	ModuleLoaded
	ContentLoaded
	Running
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case ModuleLoaded:
		return "module loaded"
	case ContentLoaded:
		return "content loaded"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	}
	return "unknown state"
}

// RunLoop owns the core and drives it. It implements the retro.Host
// interface by delegating to the frontend components.
type RunLoop struct {
	*Environment

	ctx   *Context
	video *VideoPresenter
	audio *AudioSink
	input *InputBridge

	core  retro.Core
	state State

	// content is loaded and must be unloaded before the core is deinitialised
	contentLoaded bool

	// content data given to the core. must stay valid until the content is
	// unloaded
	content []byte
}

// NewRunLoop is the preferred method of initialisation for the RunLoop type.
func NewRunLoop(ctx *Context, env *Environment, video *VideoPresenter, audio *AudioSink, input *InputBridge) *RunLoop {
	return &RunLoop{
		Environment: env,
		ctx:         ctx,
		video:       video,
		audio:       audio,
		input:       input,
	}
}

// State returns the current state of the RunLoop.
func (rl *RunLoop) State() State {
	return rl.state
}

// LoadModule calls the load function with the RunLoop as the host. The load
// function should return a core that has been initialised.
func (rl *RunLoop) LoadModule(load func(retro.Host) (retro.Core, error)) error {
	if rl.state != Unloaded {
		return curated.Errorf(StateError, "cannot load module when "+rl.state.String())
	}

	core, err := load(rl)
	if err != nil {
		return err
	}
	rl.core = core
	rl.state = ModuleLoaded

	if v := core.APIVersion(); v != retro.APIVersion {
		logger.Warnf(logger.Allow, "loader", "core API version is %d. expected %d", v, retro.APIVersion)
	} else {
		logger.Logf(logger.Allow, "loader", "core API version %d", v)
	}
	logger.Logf(logger.Allow, "loader", "%s", core.SystemInfo())

	return nil
}

// LoadContent loads the file into the core. The data is read from the file
// unless the core has asked to load it itself. Once loaded the audio sink is
// initialised with the sample rate reported by the core. A failure to open
// the audio device is logged and the core runs without sound.
func (rl *RunLoop) LoadContent(path string) error {
	if rl.state != ModuleLoaded {
		return curated.Errorf(StateError, "cannot load content when "+rl.state.String())
	}

	info := rl.core.SystemInfo()

	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(ContentOpenError, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return curated.Errorf(ContentReadError, err)
	}

	game := retro.GameInfo{
		Path: path,
	}

	if !info.NeedFullpath {
		game.Data = make([]byte, fi.Size())
		if _, err := io.ReadFull(f, game.Data); err != nil {
			return curated.Errorf(ContentReadError, err)
		}
	}

	if !rl.core.LoadGame(game) {
		return curated.Errorf(ContentRejected, path)
	}

	rl.content = game.Data
	rl.contentLoaded = true
	rl.ctx.session = true
	rl.state = ContentLoaded

	logger.Logf(logger.Allow, "content", "loaded %s (%d bytes)", path, fi.Size())

	av := rl.core.SystemAVInfo()
	logger.Logf(logger.Allow, "content", "%s", av)

	if err := rl.audio.Init(int(av.Timing.SampleRate)); err != nil {
		logger.Warnf(logger.Allow, "audio", "%v", err)
	}

	return nil
}

// Run polls input and steps the core until the exit flag is set. The exit
// flag is checked after every poll so once set the core is never stepped
// more than once.
func (rl *RunLoop) Run() error {
	if rl.state != ContentLoaded {
		return curated.Errorf(StateError, "cannot run when "+rl.state.String())
	}
	rl.state = Running

	for {
		rl.input.Poll()
		if rl.ctx.Exit() {
			break
		}
		rl.core.Run()
	}

	return nil
}

// Reset the core.
func (rl *RunLoop) Reset() {
	if rl.contentLoaded {
		rl.core.Reset()
	}
}

// SaveState returns the serialised state of the core.
func (rl *RunLoop) SaveState() ([]byte, error) {
	if !rl.contentLoaded {
		return nil, curated.Errorf(SerialiseError, "no content loaded")
	}

	n := rl.core.SerializeSize()
	if n <= 0 {
		return nil, curated.Errorf(SerialiseError, "not supported by core")
	}

	data := make([]byte, n)
	if !rl.core.Serialize(data) {
		return nil, curated.Errorf(SerialiseError, "core failed to save state")
	}

	return data, nil
}

// RestoreState restores state previously returned by SaveState().
func (rl *RunLoop) RestoreState(data []byte) error {
	if !rl.contentLoaded {
		return curated.Errorf(SerialiseError, "no content loaded")
	}
	if !rl.core.Unserialize(data) {
		return curated.Errorf(SerialiseError, "core failed to restore state")
	}
	return nil
}

// Close unloads content, deinitialises and closes the core, closes the audio
// sink and releases the surface. The RunLoop is Unloaded afterwards
// whether or not an error is returned. The first error encountered is
// returned.
func (rl *RunLoop) Close() error {
	rl.state = ShuttingDown

	var err error
	keep := func(e error) {
		if e != nil && err == nil {
			err = e
		}
	}

	if rl.core != nil {
		if rl.contentLoaded {
			rl.core.UnloadGame()
			rl.contentLoaded = false
		}
		rl.ctx.session = false
		rl.content = nil

		if rl.core.Initialized() {
			rl.core.Deinit()
		}
		keep(rl.core.Close())
		rl.core = nil
	}

	keep(rl.audio.Deinit())
	keep(rl.video.Close())

	rl.state = Unloaded
	logger.Log(logger.Allow, "gpretro", "shutdown complete")

	return err
}

// VideoRefresh implements the retro.Host interface.
func (rl *RunLoop) VideoRefresh(frame retro.Frame) {
	rl.video.Present(frame)
}

// InputPoll implements the retro.Host interface.
func (rl *RunLoop) InputPoll() {
	rl.input.Poll()
}

// InputState implements the retro.Host interface.
func (rl *RunLoop) InputState(port uint, device retro.Device, index uint, id uint) int16 {
	return rl.input.State(port, device, index, id)
}

// AudioSample implements the retro.Host interface.
func (rl *RunLoop) AudioSample(left int16, right int16) {
	rl.audio.Sample(left, right)
}

// AudioSampleBatch implements the retro.Host interface.
func (rl *RunLoop) AudioSampleBatch(data []int16) int {
	return rl.audio.Write(data)
}
