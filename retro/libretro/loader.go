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
#cgo linux LDFLAGS: -ldl
#cgo CFLAGS: -Wall -O2

#include <dlfcn.h>
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
)

// Sentinel error patterns returned by Load().
const (
	OpenError     = "loader: cannot open core: %s: %s"
	MissingSymbol = "loader: missing symbol: %s: %s"
	AlreadyLoaded = "loader: a core is already loaded: %s"
)

// the function table of the core. every entry is required
type functions struct {
	init                    unsafe.Pointer
	deinit                  unsafe.Pointer
	apiVersion              unsafe.Pointer
	getSystemInfo           unsafe.Pointer
	getSystemAVInfo         unsafe.Pointer
	setControllerPortDevice unsafe.Pointer
	reset                   unsafe.Pointer
	run                     unsafe.Pointer
	loadGame                unsafe.Pointer
	unloadGame              unsafe.Pointer
	serializeSize           unsafe.Pointer
	serialize               unsafe.Pointer
	unserialize             unsafe.Pointer
	setEnvironment          unsafe.Pointer
	setVideoRefresh         unsafe.Pointer
	setInputPoll            unsafe.Pointer
	setInputState           unsafe.Pointer
	setAudioSample          unsafe.Pointer
	setAudioSampleBatch     unsafe.Pointer
}

// Module is a core module opened by Load().
type Module struct {
	path   string
	handle unsafe.Pointer
	fn     functions

	initialized bool

	// the game info passed to retro_load_game(). the memory is allocated by
	// C.malloc() and is kept until the game is unloaded
	game *C.struct_retro_game_info

	// strings handed to the core by the environment callback. the core is
	// allowed to keep a pointer to them so they are only freed on Close()
	cstrings map[string]*C.char
}

// the module currently open and the host its callbacks are forwarded to
var (
	active *Module
	host   retro.Host
)

// Load opens the core module at path and resolves every entry point of the
// function table. The callbacks of the host are registered with the core and
// the core's init routine is called.
//
// Any failure to open the module or to find an entry point is returned as a
// curated error. Nothing needs to be closed in that case.
func Load(path string, h retro.Host) (*Module, error) {
	if active != nil {
		return nil, curated.Errorf(AlreadyLoaded, active.path)
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.dlopen(cpath, C.RTLD_LAZY)
	if handle == nil {
		return nil, curated.Errorf(OpenError, path, C.GoString(C.dlerror()))
	}

	mod := &Module{
		path:     path,
		handle:   handle,
		cstrings: make(map[string]*C.char),
	}

	// clear any existing error before resolving symbols
	C.dlerror()

	syms := []struct {
		name string
		dest *unsafe.Pointer
	}{
		{"retro_init", &mod.fn.init},
		{"retro_deinit", &mod.fn.deinit},
		{"retro_api_version", &mod.fn.apiVersion},
		{"retro_get_system_info", &mod.fn.getSystemInfo},
		{"retro_get_system_av_info", &mod.fn.getSystemAVInfo},
		{"retro_set_controller_port_device", &mod.fn.setControllerPortDevice},
		{"retro_reset", &mod.fn.reset},
		{"retro_run", &mod.fn.run},
		{"retro_load_game", &mod.fn.loadGame},
		{"retro_unload_game", &mod.fn.unloadGame},
		{"retro_serialize_size", &mod.fn.serializeSize},
		{"retro_serialize", &mod.fn.serialize},
		{"retro_unserialize", &mod.fn.unserialize},
		{"retro_set_environment", &mod.fn.setEnvironment},
		{"retro_set_video_refresh", &mod.fn.setVideoRefresh},
		{"retro_set_input_poll", &mod.fn.setInputPoll},
		{"retro_set_input_state", &mod.fn.setInputState},
		{"retro_set_audio_sample", &mod.fn.setAudioSample},
		{"retro_set_audio_sample_batch", &mod.fn.setAudioSampleBatch},
	}

	for _, s := range syms {
		name := C.CString(s.name)
		*s.dest = C.dlsym(handle, name)
		C.free(unsafe.Pointer(name))
		if *s.dest == nil {
			var detail string
			if err := C.dlerror(); err != nil {
				detail = C.GoString(err)
			} else {
				detail = "nil symbol"
			}
			C.dlclose(handle)
			return nil, curated.Errorf(MissingSymbol, s.name, detail)
		}
	}

	logger.Logf(logger.Allow, "loader", "opened %s", path)

	// callbacks must be available before any of them are registered because
	// the core may call the environment immediately
	active = mod
	host = h

	C.bridge_retro_set_environment(mod.fn.setEnvironment)
	C.bridge_retro_set_video_refresh(mod.fn.setVideoRefresh)
	C.bridge_retro_set_input_poll(mod.fn.setInputPoll)
	C.bridge_retro_set_input_state(mod.fn.setInputState)
	C.bridge_retro_set_audio_sample(mod.fn.setAudioSample)
	C.bridge_retro_set_audio_sample_batch(mod.fn.setAudioSampleBatch)

	C.bridge_retro_void(mod.fn.init)
	mod.initialized = true

	return mod, nil
}

// cstring returns a C copy of s that lives until the module is closed.
func (mod *Module) cstring(s string) *C.char {
	if c, ok := mod.cstrings[s]; ok {
		return c
	}
	c := C.CString(s)
	mod.cstrings[s] = c
	return c
}

// APIVersion implements the retro.Core interface.
func (mod *Module) APIVersion() uint {
	return uint(C.bridge_retro_api_version(mod.fn.apiVersion))
}

// SystemInfo implements the retro.Core interface.
func (mod *Module) SystemInfo() retro.SystemInfo {
	var si C.struct_retro_system_info
	C.bridge_retro_get_system_info(mod.fn.getSystemInfo, &si)
	return retro.SystemInfo{
		LibraryName:     C.GoString(si.library_name),
		LibraryVersion:  C.GoString(si.library_version),
		ValidExtensions: C.GoString(si.valid_extensions),
		NeedFullpath:    bool(si.need_fullpath),
		BlockExtract:    bool(si.block_extract),
	}
}

// SystemAVInfo implements the retro.Core interface.
func (mod *Module) SystemAVInfo() retro.SystemAVInfo {
	var av C.struct_retro_system_av_info
	C.bridge_retro_get_system_av_info(mod.fn.getSystemAVInfo, &av)
	return retro.SystemAVInfo{
		Geometry: retro.Geometry{
			BaseWidth:   int(av.geometry.base_width),
			BaseHeight:  int(av.geometry.base_height),
			MaxWidth:    int(av.geometry.max_width),
			MaxHeight:   int(av.geometry.max_height),
			AspectRatio: float32(av.geometry.aspect_ratio),
		},
		Timing: retro.Timing{
			FPS:        float64(av.timing.fps),
			SampleRate: float64(av.timing.sample_rate),
		},
	}
}

// SetControllerPortDevice implements the retro.PortDevicer interface.
func (mod *Module) SetControllerPortDevice(port uint, device retro.Device) {
	C.bridge_retro_set_controller_port_device(mod.fn.setControllerPortDevice, C.uint(port), C.uint(device))
}

// LoadGame implements the retro.Core interface. The path and data are copied
// into C memory which remains valid until UnloadGame() is called.
func (mod *Module) LoadGame(game retro.GameInfo) bool {
	mod.freeGame()

	gi := (*C.struct_retro_game_info)(C.calloc(1, C.size_t(unsafe.Sizeof(C.struct_retro_game_info{}))))
	gi.path = C.CString(game.Path)
	if game.Meta != "" {
		gi.meta = C.CString(game.Meta)
	}
	if game.Data != nil {
		gi.data = C.CBytes(game.Data)
		gi.size = C.size_t(len(game.Data))
	}
	mod.game = gi

	if !bool(C.bridge_retro_load_game(mod.fn.loadGame, gi)) {
		mod.freeGame()
		return false
	}
	return true
}

func (mod *Module) freeGame() {
	if mod.game == nil {
		return
	}
	C.free(unsafe.Pointer(mod.game.path))
	C.free(unsafe.Pointer(mod.game.meta))
	C.free(unsafe.Pointer(mod.game.data))
	C.free(unsafe.Pointer(mod.game))
	mod.game = nil
}

// UnloadGame implements the retro.Core interface.
func (mod *Module) UnloadGame() {
	C.bridge_retro_void(mod.fn.unloadGame)
	mod.freeGame()
}

// Run implements the retro.Core interface.
func (mod *Module) Run() {
	C.bridge_retro_void(mod.fn.run)
}

// Reset implements the retro.Core interface.
func (mod *Module) Reset() {
	C.bridge_retro_void(mod.fn.reset)
}

// SerializeSize implements the retro.Core interface.
func (mod *Module) SerializeSize() int {
	return int(C.bridge_retro_serialize_size(mod.fn.serializeSize))
}

// Serialize implements the retro.Core interface.
func (mod *Module) Serialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	buf := C.malloc(C.size_t(len(data)))
	defer C.free(buf)
	if !bool(C.bridge_retro_serialize(mod.fn.serialize, buf, C.size_t(len(data)))) {
		return false
	}
	copy(data, unsafe.Slice((*byte)(buf), len(data)))
	return true
}

// Unserialize implements the retro.Core interface.
func (mod *Module) Unserialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	buf := C.CBytes(data)
	defer C.free(buf)
	return bool(C.bridge_retro_unserialize(mod.fn.unserialize, buf, C.size_t(len(data))))
}

// Initialized implements the retro.Core interface.
func (mod *Module) Initialized() bool {
	return mod.initialized
}

// Deinit implements the retro.Core interface.
func (mod *Module) Deinit() {
	if !mod.initialized {
		return
	}
	C.bridge_retro_void(mod.fn.deinit)
	mod.initialized = false
}

// Close implements the retro.Core interface.
func (mod *Module) Close() error {
	mod.freeGame()

	var err error
	if mod.handle != nil {
		if C.dlclose(mod.handle) != 0 {
			err = curated.Errorf("loader: %s", C.GoString(C.dlerror()))
		}
		mod.handle = nil
	}

	for _, c := range mod.cstrings {
		C.free(unsafe.Pointer(c))
	}
	mod.cstrings = nil

	if active == mod {
		active = nil
		host = nil
	}

	return err
}
