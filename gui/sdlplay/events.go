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

package sdlplay

import (
	"github.com/jetsetilly/gpretro/keymap"
	"github.com/jetsetilly/gpretro/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

var modifiers = []struct {
	sdl  uint16
	host userinput.KeyMod
}{
	{sdl: uint16(sdl.KMOD_SHIFT), host: userinput.KeyModShift},
	{sdl: uint16(sdl.KMOD_CTRL), host: userinput.KeyModCtrl},
	{sdl: uint16(sdl.KMOD_ALT), host: userinput.KeyModAlt},
	{sdl: uint16(sdl.KMOD_GUI), host: userinput.KeyModMeta},
}

func translateMod(mod uint16) userinput.KeyMod {
	m := userinput.KeyModNone
	for _, t := range modifiers {
		if mod&t.sdl != 0 {
			m |= t.host
		}
	}
	return m
}

func translateButton(button uint8) userinput.MouseButton {
	switch button {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	}
	return userinput.MouseButtonNone
}

// PollEvent implements the userinput.EventSource interface. SDL events with
// no equivalent are skipped.
func (win *Window) PollEvent() userinput.Event {
	for {
		switch ev := sdl.PollEvent().(type) {
		case nil:
			return nil

		case *sdl.QuitEvent:
			return userinput.EventQuit{}

		case *sdl.KeyboardEvent:
			// SDL scancodes are USB HID usage ids, which is what keymap
			// expects
			return userinput.EventKeyboard{
				Key:    keymap.Key(ev.Keysym.Scancode),
				Down:   ev.Type == sdl.KEYDOWN,
				Mod:    translateMod(ev.Keysym.Mod),
				Repeat: ev.Repeat != 0,
			}

		case *sdl.MouseButtonEvent:
			return userinput.EventMouseButton{
				Button: translateButton(ev.Button),
				Down:   ev.State == sdl.PRESSED,
			}

		case *sdl.MouseMotionEvent:
			return userinput.EventMouseMotion{
				X:  int(ev.X),
				Y:  int(ev.Y),
				DX: int(ev.XRel),
				DY: int(ev.YRel),
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				return userinput.EventResize{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				}
			}
		}
	}
}

// ResizeAck implements the userinput.EventSource interface.
func (win *Window) ResizeAck() error {
	return win.fetchSurface()
}
