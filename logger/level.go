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

package logger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Level is the severity of a log entry.
type Level int

// List of valid Level values, in order of increasing severity.
const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (lvl Level) String() string {
	switch lvl {
	case Debug:
		return "dbg"
	case Info:
		return "inf"
	case Warn:
		return "wrn"
	case Error:
		return "err"
	}
	return "???"
}

// ParseLevel converts the name of a level to a Level value. The short form
// returned by Level.String() is accepted as well as the full name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return Debug, nil
	case "info", "inf":
		return Info, nil
	case "warn", "warning", "wrn":
		return Warn, nil
	case "error", "err":
		return Error, nil
	}
	return Info, fmt.Errorf("logger: unknown level %q", s)
}

func (lvl Level) charm() log.Level {
	switch lvl {
	case Debug:
		return log.DebugLevel
	case Warn:
		return log.WarnLevel
	case Error:
		return log.ErrorLevel
	}
	return log.InfoLevel
}
