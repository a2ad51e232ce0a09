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

package retro_test

import (
	"testing"

	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/test"
)

func TestEnvironmentCommandString(t *testing.T) {
	test.ExpectEquality(t, retro.EnvSetPixelFormat.String(), "SET_PIXEL_FORMAT")
	test.ExpectEquality(t, retro.EnvGetLogInterface.String(), "GET_LOG_INTERFACE")
	test.ExpectEquality(t, (retro.EnvSetGeometry | retro.EnvExperimental).String(), "SET_GEOMETRY (experimental)")
	test.ExpectEquality(t, retro.EnvironmentCommand(9999).String(), "#9999")
}

func TestDeviceClass(t *testing.T) {
	kb := retro.Subclass(retro.DeviceKeyboard, 0)
	test.ExpectInequality(t, kb, retro.DeviceKeyboard)
	test.ExpectEquality(t, kb.Class(), retro.DeviceKeyboard)
	test.ExpectEquality(t, kb.String(), "keyboard (subclass 0)")
	test.ExpectEquality(t, retro.DeviceJoypad.String(), "joypad")
	test.ExpectEquality(t, retro.Subclass(retro.DeviceJoypad, 2).Class(), retro.DeviceJoypad)
}

func TestPixelFormatString(t *testing.T) {
	test.ExpectEquality(t, retro.PixelXRGB8888.String(), "XRGB8888")
	test.ExpectEquality(t, retro.PixelRGB565.String(), "RGB565")
	test.ExpectEquality(t, retro.Pixel0RGB1555.String(), "0RGB1555")
}

func TestLogLevelString(t *testing.T) {
	test.ExpectEquality(t, retro.LogDebug.String(), "dbg")
	test.ExpectEquality(t, retro.LogError.String(), "err")
	test.ExpectEquality(t, retro.LogLevel(10).String(), "???")
}
