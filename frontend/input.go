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
	"github.com/jetsetilly/gpretro/keymap"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/userinput"
)

// the only port and index supported by the input state
const (
	supportedPort  = 0
	supportedIndex = 0
)

// the value of a pressed button in the input state
const pressed = 1

var modifiers = []struct {
	host userinput.KeyMod
	core uint16
}{
	{host: userinput.KeyModShift, core: retro.ModShift},
	{host: userinput.KeyModCtrl, core: retro.ModCtrl},
	{host: userinput.KeyModAlt, core: retro.ModAlt},
	{host: userinput.KeyModMeta, core: retro.ModMeta},
}

func translateMod(mod userinput.KeyMod) uint16 {
	var m uint16
	for _, t := range modifiers {
		if mod&t.host == t.host {
			m |= t.core
		}
	}
	return m
}

// scalePointer converts a relative host pointer movement to the coordinate
// space of the core.
//
// TODO: scale relative to the presented frame. until then pointer axes always
// read as zero
func scalePointer(delta int) int16 {
	return 0
}

// InputBridge translates events from a userinput.EventSource into the input
// state of the Context.
type InputBridge struct {
	ctx    *Context
	events userinput.EventSource
}

// NewInputBridge is the preferred method of initialisation for the
// InputBridge type.
func NewInputBridge(ctx *Context, events userinput.EventSource) *InputBridge {
	return &InputBridge{
		ctx:    ctx,
		events: events,
	}
}

// Poll drains all pending events from the event source. Never blocks.
func (inp *InputBridge) Poll() {
	for ev := inp.events.PollEvent(); ev != nil; ev = inp.events.PollEvent() {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			inp.keyboard(ev)

		case userinput.EventMouseButton:
			if ev.Button == userinput.MouseButtonLeft {
				inp.ctx.input.Pointer[retro.PointerPressed] = boolState(ev.Down)
			}

		case userinput.EventMouseMotion:
			inp.ctx.input.Pointer[retro.PointerX] = scalePointer(ev.DX)
			inp.ctx.input.Pointer[retro.PointerY] = scalePointer(ev.DY)

		case userinput.EventQuit:
			logger.Log(logger.Allow, "input", "quit requested")
			inp.ctx.RequestExit()

		case userinput.EventResize:
			if err := inp.events.ResizeAck(); err != nil {
				logger.Warnf(logger.Allow, "input", "%v", err)
			}

		default:
			logger.Debugf(logger.Allow, "input", "unhandled event: %T", ev)
		}
	}
}

func (inp *InputBridge) keyboard(ev userinput.EventKeyboard) {
	if ev.Repeat {
		return
	}

	if cb := inp.ctx.keyboard; cb != nil {
		if k := keymap.Retro(ev.Key); k != retro.KeyUnknown {
			cb(ev.Down, k, 0, translateMod(ev.Mod))
		}
	}

	if id := keymap.Joypad(ev.Key); id != keymap.NoJoypad {
		inp.ctx.input.Joypad[id] = boolState(ev.Down)
	}
}

func boolState(b bool) int16 {
	if b {
		return pressed
	}
	return 0
}

// State returns the value of the input identified by the arguments. State()
// does not change the input state.
func (inp *InputBridge) State(port uint, device retro.Device, index uint, id uint) int16 {
	if port != supportedPort || index != supportedIndex {
		return 0
	}

	switch device.Class() {
	case retro.DeviceJoypad:
		if id < uint(len(inp.ctx.input.Joypad)) {
			return inp.ctx.input.Joypad[id]
		}
	case retro.DeviceMouse, retro.DevicePointer:
		if id < uint(len(inp.ctx.input.Pointer)) {
			return inp.ctx.input.Pointer[id]
		}
	default:
		logger.Debugf(logger.Allow, "input", "unsupported device: %s", device)
	}

	return 0
}
