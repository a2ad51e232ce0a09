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

package frontend_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gpretro/frontend"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/test"
)

func TestPixelFormatNegotiation(t *testing.T) {
	ctx := frontend.NewContext()
	env := frontend.NewEnvironment(ctx, nil, ".", ".")

	_, ok := ctx.PixelFormat()
	test.ExpectFailure(t, ok)

	// legacy format is never accepted
	test.ExpectFailure(t, env.SetPixelFormat(retro.Pixel0RGB1555))
	_, ok = ctx.PixelFormat()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, env.SetPixelFormat(retro.PixelXRGB8888))
	f, ok := ctx.PixelFormat()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, retro.PixelXRGB8888)

	// rejection leaves the previous format in place
	test.ExpectFailure(t, env.SetPixelFormat(retro.Pixel0RGB1555))
	test.ExpectFailure(t, env.SetPixelFormat(retro.PixelFormat(99)))
	f, _ = ctx.PixelFormat()
	test.ExpectEquality(t, f, retro.PixelXRGB8888)

	test.ExpectSuccess(t, env.SetPixelFormat(retro.PixelRGB565))
	f, _ = ctx.PixelFormat()
	test.ExpectEquality(t, f, retro.PixelRGB565)
}

func TestControllerInfo(t *testing.T) {
	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")
	c := newCore()

	keyboard := retro.Subclass(retro.DeviceKeyboard, 0)

	ports := []retro.ControllerInfo{
		{Types: []retro.ControllerDescription{
			{Desc: "joypad", ID: retro.DeviceJoypad},
		}},
		{Types: []retro.ControllerDescription{
			{Desc: "joypad", ID: retro.DeviceJoypad},
			{Desc: "keyboard", ID: keyboard},
		}},
		{Types: []retro.ControllerDescription{
			{Desc: "keyboard", ID: retro.DeviceKeyboard},
		}},
	}

	test.ExpectSuccess(t, env.SetControllerInfo(ports, c))
	test.DemandEquality(t, len(c.ports), 1)
	test.ExpectEquality(t, c.ports[0].port, uint(1))
	test.ExpectEquality(t, c.ports[0].device, keyboard)

	// a later declaration does not assign a second keyboard
	test.ExpectSuccess(t, env.SetControllerInfo(ports, c))
	test.ExpectEquality(t, len(c.ports), 1)
}

func TestControllerInfoNoKeyboard(t *testing.T) {
	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")
	c := newCore()

	ports := []retro.ControllerInfo{
		{Types: []retro.ControllerDescription{
			{Desc: "joypad", ID: retro.DeviceJoypad},
			{Desc: "mouse", ID: retro.DeviceMouse},
		}},
	}

	test.ExpectSuccess(t, env.SetControllerInfo(ports, c))
	test.ExpectEquality(t, len(c.ports), 0)
}

func TestCoreLog(t *testing.T) {
	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")

	code := -1
	env.Exit = func(c int) {
		code = c
	}

	env.CoreLog(retro.LogDebug, "debug\n")
	env.CoreLog(retro.LogInfo, "info\n")
	env.CoreLog(retro.LogWarn, "warn\n")
	test.ExpectEquality(t, code, -1)

	env.CoreLog(retro.LogError, "error\n")
	test.ExpectEquality(t, code, 1)
}

func TestUnhandledCommand(t *testing.T) {
	logger.SetLevel(logger.Debug)
	defer logger.SetLevel(logger.Info)
	logger.Clear()

	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")
	test.ExpectFailure(t, env.Unhandled(retro.EnvSetRotation))
	test.ExpectFailure(t, env.Unhandled(retro.EnvironmentCommand(9999)))

	// negotiation continues after an unhandled command
	test.ExpectSuccess(t, env.CanDupe())

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "environment: unhandled command: SET_ROTATION"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "environment: unhandled command: #9999"))
}

func TestDirectories(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	test.DemandSuccess(t, os.WriteFile(file, []byte{}, 0600))

	env := frontend.NewEnvironment(frontend.NewContext(), nil, tmp, filepath.Join(tmp, "missing"))

	dir, ok := env.SystemDirectory()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dir, tmp)

	dir, ok = env.SaveDirectory()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dir, ".")

	env = frontend.NewEnvironment(frontend.NewContext(), nil, file, "")
	dir, _ = env.SystemDirectory()
	test.ExpectEquality(t, dir, ".")
	dir, _ = env.SaveDirectory()
	test.ExpectEquality(t, dir, ".")
}

func TestKeyboardCallbackRegistration(t *testing.T) {
	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")
	test.ExpectFailure(t, env.SetKeyboardCallback(func(bool, retro.Key, uint32, uint16) {}))
}

func TestVariables(t *testing.T) {
	env := frontend.NewEnvironment(frontend.NewContext(), nil, ".", ".")

	_, ok := env.GetVariable("test_speed")
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, env.SetVariables([]retro.Variable{
		{Key: "test_speed", Value: "Speed; normal|fast|slow"},
	}))

	v, ok := env.GetVariable("test_speed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "normal")

	test.ExpectFailure(t, env.VariableUpdate())
}

func TestShutdownCommand(t *testing.T) {
	ctx := frontend.NewContext()
	env := frontend.NewEnvironment(ctx, nil, ".", ".")
	test.ExpectFailure(t, ctx.Exit())
	test.ExpectSuccess(t, env.Shutdown())
	test.ExpectSuccess(t, ctx.Exit())
}
