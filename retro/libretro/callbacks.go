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

package libretro

/*
#include "bridge.h"
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
)

//export gpretroEnvironment
func gpretroEnvironment(cmd C.uint, data unsafe.Pointer) C.bool {
	if host == nil {
		return false
	}

	switch c := retro.EnvironmentCommand(cmd); c {
	case retro.EnvGetLogInterface:
		if !host.LogInterface() {
			return false
		}
		C.bridge_set_log_interface(data)
		return true

	case retro.EnvGetCanDupe:
		*(*C.bool)(data) = C.bool(host.CanDupe())
		return true

	case retro.EnvSetPixelFormat:
		return C.bool(host.SetPixelFormat(retro.PixelFormat(*(*C.uint)(data))))

	case retro.EnvGetSystemDirectory:
		dir, ok := host.SystemDirectory()
		if !ok {
			return false
		}
		*(**C.char)(data) = active.cstring(dir)
		return true

	case retro.EnvGetSaveDirectory:
		dir, ok := host.SaveDirectory()
		if !ok {
			return false
		}
		*(**C.char)(data) = active.cstring(dir)
		return true

	case retro.EnvSetControllerInfo:
		return C.bool(host.SetControllerInfo(controllerInfo(data), active))

	case retro.EnvSetKeyboardCallback:
		cb := (*C.struct_retro_keyboard_callback)(data).callback
		if cb == nil {
			return C.bool(host.SetKeyboardCallback(nil))
		}
		return C.bool(host.SetKeyboardCallback(func(down bool, key retro.Key, character uint32, modifiers uint16) {
			C.bridge_keyboard_event(cb, C.bool(down), C.uint(key), C.uint32_t(character), C.uint16_t(modifiers))
		}))

	case retro.EnvGetVariable:
		v := (*C.struct_retro_variable)(data)
		if v.key == nil {
			return false
		}
		val, ok := host.GetVariable(C.GoString(v.key))
		if !ok {
			v.value = nil
			return false
		}
		v.value = active.cstring(val)
		return true

	case retro.EnvSetVariables:
		return C.bool(host.SetVariables(variables(data)))

	case retro.EnvGetVariableUpdate:
		*(*C.bool)(data) = C.bool(host.VariableUpdate())
		return true

	case retro.EnvShutdown:
		return C.bool(host.Shutdown())

	default:
		return C.bool(host.Unhandled(c))
	}
}

// controllerInfo decodes the array of retro_controller_info structures
// passed with SET_CONTROLLER_INFO. the array is terminated by an entry with
// a nil types field.
func controllerInfo(data unsafe.Pointer) []retro.ControllerInfo {
	var ports []retro.ControllerInfo

	sz := unsafe.Sizeof(C.struct_retro_controller_info{})
	for i := uintptr(0); ; i++ {
		info := (*C.struct_retro_controller_info)(unsafe.Add(data, i*sz))
		if info.types == nil {
			break
		}

		var port retro.ControllerInfo
		for _, t := range unsafe.Slice(info.types, int(info.num_types)) {
			port.Types = append(port.Types, retro.ControllerDescription{
				Desc: C.GoString(t.desc),
				ID:   retro.Device(t.id),
			})
		}
		ports = append(ports, port)
	}

	return ports
}

// variables decodes the array of retro_variable structures passed with
// SET_VARIABLES. the array is terminated by an entry with a nil key.
func variables(data unsafe.Pointer) []retro.Variable {
	var vars []retro.Variable

	sz := unsafe.Sizeof(C.struct_retro_variable{})
	for i := uintptr(0); ; i++ {
		v := (*C.struct_retro_variable)(unsafe.Add(data, i*sz))
		if v.key == nil {
			break
		}
		vars = append(vars, retro.Variable{
			Key:   C.GoString(v.key),
			Value: C.GoString(v.value),
		})
	}

	return vars
}

//export gpretroVideoRefresh
func gpretroVideoRefresh(data unsafe.Pointer, width C.uint, height C.uint, pitch C.size_t) {
	if host == nil {
		return
	}

	frame := retro.Frame{
		Width:  int(width),
		Height: int(height),
		Pitch:  int(pitch),
	}
	if data != nil {
		frame.Data = unsafe.Slice((*byte)(data), frame.Pitch*frame.Height)
	}

	host.VideoRefresh(frame)
}

//export gpretroInputPoll
func gpretroInputPoll() {
	if host == nil {
		return
	}
	host.InputPoll()
}

//export gpretroInputState
func gpretroInputState(port C.uint, device C.uint, index C.uint, id C.uint) C.int16_t {
	if host == nil {
		return 0
	}
	return C.int16_t(host.InputState(uint(port), retro.Device(device), uint(index), uint(id)))
}

//export gpretroAudioSample
func gpretroAudioSample(left C.int16_t, right C.int16_t) {
	if host == nil {
		return
	}
	host.AudioSample(int16(left), int16(right))
}

//export gpretroAudioSampleBatch
func gpretroAudioSampleBatch(data unsafe.Pointer, frames C.size_t) C.size_t {
	if host == nil || data == nil || frames == 0 {
		return 0
	}
	return C.size_t(host.AudioSampleBatch(unsafe.Slice((*int16)(data), int(frames)*2)))
}

//export gpretroLog
func gpretroLog(level C.uint, msg *C.char) {
	if host == nil {
		logger.Log(logger.Allow, "core", strings.TrimRight(C.GoString(msg), "\n"))
		return
	}
	host.CoreLog(retro.LogLevel(level), strings.TrimRight(C.GoString(msg), "\n"))
}
