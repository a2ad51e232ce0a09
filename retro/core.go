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

package retro

import "fmt"

// APIVersion is the version of the libretro ABI that gpretro is written for.
const APIVersion = 1

// SystemInfo describes the core. It can be requested at any time, including
// before the core has been initialised.
type SystemInfo struct {
	LibraryName     string
	LibraryVersion  string
	ValidExtensions string

	// the core requires the path of the content file and will load the data
	// itself. GameInfo.Data will be nil when passed to LoadGame()
	NeedFullpath bool

	// the core will not attempt to extract content from archives
	BlockExtract bool
}

func (s SystemInfo) String() string {
	return fmt.Sprintf("%s %s [%s]", s.LibraryName, s.LibraryVersion, s.ValidExtensions)
}

// Geometry of frames produced by the core.
type Geometry struct {
	BaseWidth   int
	BaseHeight  int
	MaxWidth    int
	MaxHeight   int
	AspectRatio float32
}

// Timing of the core.
type Timing struct {
	FPS        float64
	SampleRate float64
}

// SystemAVInfo is the audio/video description of the core. It is only valid
// after content has been loaded.
type SystemAVInfo struct {
	Geometry Geometry
	Timing   Timing
}

func (av SystemAVInfo) String() string {
	return fmt.Sprintf("%dx%d (max %dx%d) %.2ffps %.0fHz",
		av.Geometry.BaseWidth, av.Geometry.BaseHeight,
		av.Geometry.MaxWidth, av.Geometry.MaxHeight,
		av.Timing.FPS, av.Timing.SampleRate)
}

// GameInfo is passed to the core when loading content. Data is nil if the
// core requires the full path of the content.
type GameInfo struct {
	Path string
	Data []byte
	Meta string
}

// Frame is a single image passed to the video refresh callback. The data is
// owned by the core and is only valid for the duration of the callback. A nil
// Data field indicates that the frame should be duplicated.
type Frame struct {
	Data   []byte
	Width  int
	Height int
	Pitch  int
}

// PortDevicer is the part of the Core interface that assigns device classes
// to ports. It is available as soon as the module has been opened, including
// during the core's init routine.
type PortDevicer interface {
	SetControllerPortDevice(port uint, device Device)
}

// Core is the function table of a loaded core module. A Core is exclusively
// owned by a single caller and is not safe for concurrent use.
type Core interface {
	PortDevicer

	APIVersion() uint
	SystemInfo() SystemInfo
	SystemAVInfo() SystemAVInfo

	LoadGame(game GameInfo) bool
	UnloadGame()
	Run()
	Reset()

	SerializeSize() int
	Serialize(data []byte) bool
	Unserialize(data []byte) bool

	// Initialized returns true if the core's init routine has been called
	// and Deinit() has not.
	Initialized() bool
	Deinit()

	// Close releases the module. Calling any other function after Close()
	// is undefined.
	Close() error
}

// Environment is the set of environment commands handled by the host. The
// implementation of the environment callback decodes the command payload and
// calls the corresponding function. Commands without a corresponding function
// are passed to Unhandled().
type Environment interface {
	// whether the host provides a logging interface. if the result is true
	// core log messages will be forwarded to CoreLog()
	LogInterface() bool
	CoreLog(level LogLevel, msg string)

	CanDupe() bool
	SetPixelFormat(format PixelFormat) bool
	SystemDirectory() (string, bool)
	SaveDirectory() (string, bool)
	SetControllerInfo(ports []ControllerInfo, dev PortDevicer) bool
	SetKeyboardCallback(cb KeyboardCallback) bool
	GetVariable(key string) (string, bool)
	SetVariables(vars []Variable) bool
	VariableUpdate() bool
	Shutdown() bool

	Unhandled(cmd EnvironmentCommand) bool
}

// Host is the complete set of callbacks used by a core.
type Host interface {
	Environment

	VideoRefresh(frame Frame)
	InputPoll()
	InputState(port uint, device Device, index uint, id uint) int16

	// AudioSample is a single stereo frame
	AudioSample(left int16, right int16)

	// AudioSampleBatch is interleaved stereo data. The number of frames is
	// len(data)/2. Returns the number of frames consumed.
	AudioSampleBatch(data []int16) int
}
