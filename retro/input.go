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

// Device is an input device class. The lower eight bits are the base class,
// the remaining bits describe a subclass of the base class.
type Device uint32

// List of base device classes.
const (
	DeviceNone Device = iota
	DeviceJoypad
	DeviceMouse
	DeviceKeyboard
	DeviceLightgun
	DeviceAnalog
	DevicePointer
)

const deviceTypeMask = 0xff

// Class returns the base class of the device.
func (d Device) Class() Device {
	return d & deviceTypeMask
}

// Subclass creates a new device value from a base class and an index.
func Subclass(base Device, id uint32) Device {
	return Device((id+1)<<8) | base.Class()
}

func (d Device) String() string {
	var s string
	switch d.Class() {
	case DeviceNone:
		s = "none"
	case DeviceJoypad:
		s = "joypad"
	case DeviceMouse:
		s = "mouse"
	case DeviceKeyboard:
		s = "keyboard"
	case DeviceLightgun:
		s = "lightgun"
	case DeviceAnalog:
		s = "analog"
	case DevicePointer:
		s = "pointer"
	default:
		return fmt.Sprintf("unknown device (%d)", uint32(d))
	}
	if d != d.Class() {
		return fmt.Sprintf("%s (subclass %d)", s, uint32(d>>8)-1)
	}
	return s
}

// Joypad button identifiers used by the input state callback when the device
// is DeviceJoypad.
const (
	JoypadB = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
	JoypadL2
	JoypadR2
	JoypadL3
	JoypadR3

	// the number of joypad identifiers
	JoypadCount
)

// Pointer identifiers used by the input state callback when the device is
// DevicePointer. The same values are used for DeviceMouse where the third
// identifier is the left mouse button.
const (
	PointerX = iota
	PointerY
	PointerPressed

	// the number of pointer identifiers
	PointerCount
)

// ControllerDescription is one of the device types a port can accept.
type ControllerDescription struct {
	Desc string
	ID   Device
}

// ControllerInfo is the list of device types accepted by a port. The index of
// the ControllerInfo in a list passed to the environment is the port number.
type ControllerInfo struct {
	Types []ControllerDescription
}
