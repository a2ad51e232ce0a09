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

package userinput

import "github.com/jetsetilly/gpretro/keymap"

// Event describes any of the events that can be returned by an EventSource.
type Event interface{}

// KeyMod identifies the modifier keys held during a keyboard event. Values
// can be combined.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
	KeyModMeta
)

// EventKeyboard is a key press or release.
type EventKeyboard struct {
	Key  keymap.Key
	Down bool
	Mod  KeyMod

	// the event is generated by the keyboard's auto-repeat
	Repeat bool
}

// MouseButton identifies the mouse button in a EventMouseButton event.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is a mouse button press or release.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is movement of the mouse. X and Y are the position of the
// pointer in the window. DX and DY are the movement since the previous event.
type EventMouseMotion struct {
	X  int
	Y  int
	DX int
	DY int
}

// EventQuit is sent when the user has requested that the program end.
type EventQuit struct{}

// EventResize is sent when the display has been resized. Width and Height are
// the new dimensions of the display.
type EventResize struct {
	Width  int
	Height int
}

// EventSource is implemented by a GUI that produces input events.
type EventSource interface {
	// PollEvent returns the next pending event, or nil if there are no
	// pending events. PollEvent never blocks.
	PollEvent() Event

	// ResizeAck acknowledges an EventResize. The display should not be
	// drawn to between receiving an EventResize and calling ResizeAck().
	ResizeAck() error
}
