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

import "github.com/jetsetilly/gpretro/retro"

// InputState is the table read by the core through the input state callback.
// It is written only by InputBridge.Poll().
type InputState struct {
	Joypad  [retro.JoypadCount]int16
	Pointer [retro.PointerCount]int16
}

// Context is the state shared by the components of the frontend. There is one
// Context per RunLoop.
type Context struct {
	exit bool

	// the pixel format is zero (0RGB1555) until the core negotiates a
	// supported format
	format    retro.PixelFormat
	formatSet bool

	// content is loaded. the pixel format cannot change during a session
	session bool

	// may be nil
	keyboard retro.KeyboardCallback

	input InputState
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext() *Context {
	return &Context{}
}

// RequestExit sets the exit flag. The RunLoop will stop before the next step
// of the core.
func (ctx *Context) RequestExit() {
	ctx.exit = true
}

// Exit returns true if the exit flag has been set.
func (ctx *Context) Exit() bool {
	return ctx.exit
}

// PixelFormat returns the negotiated pixel format. The second return value is
// false if no format has been negotiated.
func (ctx *Context) PixelFormat() (retro.PixelFormat, bool) {
	return ctx.format, ctx.formatSet
}

// Input returns a copy of the current input state.
func (ctx *Context) Input() InputState {
	return ctx.input
}
