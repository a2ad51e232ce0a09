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

// EnvironmentCommand is the command value passed by the core to the
// environment callback.
type EnvironmentCommand uint32

// List of environment commands. Only some of these are handled by gpretro
// but all of them are named so that unhandled commands can be logged in a
// readable form.
const (
	EnvSetRotation                EnvironmentCommand = 1
	EnvGetOverscan                EnvironmentCommand = 2
	EnvGetCanDupe                 EnvironmentCommand = 3
	EnvSetMessage                 EnvironmentCommand = 6
	EnvShutdown                   EnvironmentCommand = 7
	EnvSetPerformanceLevel        EnvironmentCommand = 8
	EnvGetSystemDirectory         EnvironmentCommand = 9
	EnvSetPixelFormat             EnvironmentCommand = 10
	EnvSetInputDescriptors        EnvironmentCommand = 11
	EnvSetKeyboardCallback        EnvironmentCommand = 12
	EnvSetDiskControlInterface    EnvironmentCommand = 13
	EnvSetHWRender                EnvironmentCommand = 14
	EnvGetVariable                EnvironmentCommand = 15
	EnvSetVariables               EnvironmentCommand = 16
	EnvGetVariableUpdate          EnvironmentCommand = 17
	EnvSetSupportNoGame           EnvironmentCommand = 18
	EnvGetLibretroPath            EnvironmentCommand = 19
	EnvSetFrameTimeCallback       EnvironmentCommand = 21
	EnvSetAudioCallback           EnvironmentCommand = 22
	EnvGetRumbleInterface         EnvironmentCommand = 23
	EnvGetInputDeviceCapabilities EnvironmentCommand = 24
	EnvGetLogInterface            EnvironmentCommand = 27
	EnvGetPerfInterface           EnvironmentCommand = 28
	EnvGetLocationInterface       EnvironmentCommand = 29
	EnvGetCoreAssetsDirectory     EnvironmentCommand = 30
	EnvGetSaveDirectory           EnvironmentCommand = 31
	EnvSetSystemAVInfo            EnvironmentCommand = 32
	EnvSetProcAddressCallback     EnvironmentCommand = 33
	EnvSetSubsystemInfo           EnvironmentCommand = 34
	EnvSetControllerInfo          EnvironmentCommand = 35
	EnvSetGeometry                EnvironmentCommand = 37
	EnvGetUsername                EnvironmentCommand = 38
	EnvGetLanguage                EnvironmentCommand = 39
)

// EnvExperimental is or'ed with a command value to indicate that the command
// is not yet part of the stable ABI.
const EnvExperimental EnvironmentCommand = 0x10000

var environmentCommandNames = map[EnvironmentCommand]string{
	EnvSetRotation:                "SET_ROTATION",
	EnvGetOverscan:                "GET_OVERSCAN",
	EnvGetCanDupe:                 "GET_CAN_DUPE",
	EnvSetMessage:                 "SET_MESSAGE",
	EnvShutdown:                   "SHUTDOWN",
	EnvSetPerformanceLevel:        "SET_PERFORMANCE_LEVEL",
	EnvGetSystemDirectory:         "GET_SYSTEM_DIRECTORY",
	EnvSetPixelFormat:             "SET_PIXEL_FORMAT",
	EnvSetInputDescriptors:        "SET_INPUT_DESCRIPTORS",
	EnvSetKeyboardCallback:        "SET_KEYBOARD_CALLBACK",
	EnvSetDiskControlInterface:    "SET_DISK_CONTROL_INTERFACE",
	EnvSetHWRender:                "SET_HW_RENDER",
	EnvGetVariable:                "GET_VARIABLE",
	EnvSetVariables:               "SET_VARIABLES",
	EnvGetVariableUpdate:          "GET_VARIABLE_UPDATE",
	EnvSetSupportNoGame:           "SET_SUPPORT_NO_GAME",
	EnvGetLibretroPath:            "GET_LIBRETRO_PATH",
	EnvSetFrameTimeCallback:       "SET_FRAME_TIME_CALLBACK",
	EnvSetAudioCallback:           "SET_AUDIO_CALLBACK",
	EnvGetRumbleInterface:         "GET_RUMBLE_INTERFACE",
	EnvGetInputDeviceCapabilities: "GET_INPUT_DEVICE_CAPABILITIES",
	EnvGetLogInterface:            "GET_LOG_INTERFACE",
	EnvGetPerfInterface:           "GET_PERF_INTERFACE",
	EnvGetLocationInterface:       "GET_LOCATION_INTERFACE",
	EnvGetCoreAssetsDirectory:     "GET_CORE_ASSETS_DIRECTORY",
	EnvGetSaveDirectory:           "GET_SAVE_DIRECTORY",
	EnvSetSystemAVInfo:            "SET_SYSTEM_AV_INFO",
	EnvSetProcAddressCallback:     "SET_PROC_ADDRESS_CALLBACK",
	EnvSetSubsystemInfo:           "SET_SUBSYSTEM_INFO",
	EnvSetControllerInfo:          "SET_CONTROLLER_INFO",
	EnvSetGeometry:                "SET_GEOMETRY",
	EnvGetUsername:                "GET_USERNAME",
	EnvGetLanguage:                "GET_LANGUAGE",
}

func (cmd EnvironmentCommand) String() string {
	s, ok := environmentCommandNames[cmd&^EnvExperimental]
	if !ok {
		return fmt.Sprintf("#%d", uint32(cmd))
	}
	if cmd&EnvExperimental == EnvExperimental {
		return fmt.Sprintf("%s (experimental)", s)
	}
	return s
}

// PixelFormat is the encoding of the frame buffers passed by the core to the
// video refresh callback.
type PixelFormat uint32

// List of pixel formats. The default format for a core that never negotiates
// a format is Pixel0RGB1555.
const (
	Pixel0RGB1555 PixelFormat = iota
	PixelXRGB8888
	PixelRGB565
)

func (f PixelFormat) String() string {
	switch f {
	case Pixel0RGB1555:
		return "0RGB1555"
	case PixelXRGB8888:
		return "XRGB8888"
	case PixelRGB565:
		return "RGB565"
	}
	return fmt.Sprintf("unknown pixel format (%d)", uint32(f))
}

// LogLevel is the severity of a message sent by the core to the logging
// interface.
type LogLevel uint32

// List of log levels.
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "dbg"
	case LogInfo:
		return "inf"
	case LogWarn:
		return "wrn"
	case LogError:
		return "err"
	}
	return "???"
}

// Variable is a core option as declared by the core with the SET_VARIABLES
// command. The Value field is the raw description string in the form:
//
//	Description; first|second|third
//
// with the first choice being the default.
type Variable struct {
	Key   string
	Value string
}

// KeyboardCallback is registered by the core with SET_KEYBOARD_CALLBACK. It
// should be called whenever a key is pressed or released.
type KeyboardCallback func(down bool, key Key, character uint32, modifiers uint16)
