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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gpretro/coreoptions"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
)

// the directory given to the core if a preferred directory does not exist
const fallbackDirectory = "."

// Environment answers the environment commands issued by the core. It
// implements the retro.Environment interface.
type Environment struct {
	ctx     *Context
	options *coreoptions.Options

	systemDir string
	saveDir   string

	// at most one port is ever switched to keyboard mode
	keyboardAssigned bool

	// Exit is called with exit code 1 when the core logs an error. Defaults
	// to os.Exit()
	Exit func(code int)
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The options argument can be nil, in which case the core
// will see an empty options store.
func NewEnvironment(ctx *Context, options *coreoptions.Options, systemDir string, saveDir string) *Environment {
	if options == nil {
		options = coreoptions.New()
	}
	return &Environment{
		ctx:       ctx,
		options:   options,
		systemDir: existingDirectory(systemDir),
		saveDir:   existingDirectory(saveDir),
		Exit:      os.Exit,
	}
}

func existingDirectory(dir string) string {
	if dir == "" {
		return fallbackDirectory
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		logger.Warnf(logger.Allow, "environment", "%s is not a directory. using %s", dir, fallbackDirectory)
		return fallbackDirectory
	}
	return dir
}

// LogInterface implements the retro.Environment interface.
func (env *Environment) LogInterface() bool {
	return true
}

// CoreLog implements the retro.Environment interface. A message at the error
// level ends the program.
func (env *Environment) CoreLog(level retro.LogLevel, msg string) {
	msg = strings.TrimRight(msg, "\r\n")

	switch level {
	case retro.LogDebug:
		logger.Debugf(logger.Allow, "core", "%s", msg)
	case retro.LogInfo:
		logger.Log(logger.Allow, "core", msg)
	case retro.LogWarn:
		logger.Warnf(logger.Allow, "core", "%s", msg)
	default:
		logger.Errorf(logger.Allow, "core", "%s", msg)
		logger.Flush()
		fmt.Printf("* core error: %s\n", msg)
		env.Exit(1)
	}
}

// CanDupe implements the retro.Environment interface.
func (env *Environment) CanDupe() bool {
	return true
}

// SetPixelFormat implements the retro.Environment interface. Only XRGB8888
// and RGB565 are supported. A request for any other format, or any request
// once content has been loaded, leaves the current format unchanged.
func (env *Environment) SetPixelFormat(format retro.PixelFormat) bool {
	if env.ctx.session {
		logger.Debugf(logger.Allow, "environment", "rejected pixel format: %s: content is loaded", format)
		return false
	}

	switch format {
	case retro.PixelXRGB8888, retro.PixelRGB565:
		env.ctx.format = format
		env.ctx.formatSet = true
		logger.Logf(logger.Allow, "environment", "pixel format: %s", format)
		return true
	}
	logger.Debugf(logger.Allow, "environment", "rejected pixel format: %s", format)
	return false
}

// SystemDirectory implements the retro.Environment interface.
func (env *Environment) SystemDirectory() (string, bool) {
	return env.systemDir, true
}

// SaveDirectory implements the retro.Environment interface.
func (env *Environment) SaveDirectory() (string, bool) {
	return env.saveDir, true
}

// SetControllerInfo implements the retro.Environment interface. The first
// port to offer a keyboard class device is switched to that device.
func (env *Environment) SetControllerInfo(ports []retro.ControllerInfo, dev retro.PortDevicer) bool {
	for p, info := range ports {
		for _, t := range info.Types {
			logger.Debugf(logger.Allow, "environment", "port %d: %s (%s)", p, t.Desc, t.ID)
			if env.keyboardAssigned || t.ID.Class() != retro.DeviceKeyboard {
				continue
			}
			env.keyboardAssigned = true
			dev.SetControllerPortDevice(uint(p), t.ID)
			logger.Logf(logger.Allow, "environment", "port %d set to %s", p, t.ID)
		}
	}
	return true
}

// SetKeyboardCallback implements the retro.Environment interface. The
// callback is stored but the result is always false.
func (env *Environment) SetKeyboardCallback(cb retro.KeyboardCallback) bool {
	env.ctx.keyboard = cb
	return false
}

// GetVariable implements the retro.Environment interface.
func (env *Environment) GetVariable(key string) (string, bool) {
	v, ok := env.options.Get(key)
	if !ok {
		logger.Debugf(logger.Allow, "environment", "unknown variable: %s", key)
	}
	return v, ok
}

// SetVariables implements the retro.Environment interface.
func (env *Environment) SetVariables(vars []retro.Variable) bool {
	env.options.Declare(vars)
	return true
}

// VariableUpdate implements the retro.Environment interface.
func (env *Environment) VariableUpdate() bool {
	return env.options.Updated()
}

// Shutdown implements the retro.Environment interface.
func (env *Environment) Shutdown() bool {
	logger.Log(logger.Allow, "environment", "shutdown requested by core")
	env.ctx.RequestExit()
	return true
}

// Unhandled implements the retro.Environment interface.
func (env *Environment) Unhandled(cmd retro.EnvironmentCommand) bool {
	logger.Debugf(logger.Allow, "environment", "unhandled command: %s", cmd)
	return false
}
