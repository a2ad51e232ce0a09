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
	"io"
)

// Permission is consulted before every log request. A request made without
// permission creates no entry and is not echoed.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the permission used by the frontend and the core bindings. It
// never refuses a request.
var Allow Permission = always{}

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger at the Info level.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger at the Info level.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Debugf adds a formatted entry to the central logger at the Debug level.
func Debugf(perm Permission, tag string, detail string, args ...any) {
	central.Leveled(perm, Debug, tag, detail, args...)
}

// Warnf adds a formatted entry to the central logger at the Warn level.
func Warnf(perm Permission, tag string, detail string, args ...any) {
	central.Leveled(perm, Warn, tag, detail, args...)
}

// Errorf adds a formatted entry to the central logger at the Error level.
func Errorf(perm Permission, tag string, detail string, args ...any) {
	central.Leveled(perm, Error, tag, detail, args...)
}

// Leveled adds a formatted entry to the central logger at the specified level.
func Leveled(perm Permission, level Level, tag string, detail string, args ...any) {
	central.Leveled(perm, level, tag, detail, args...)
}

// SetLevel sets the minimum level of the central logger.
func SetLevel(level Level) {
	central.SetLevel(level)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints entries to io.Writer as they are made.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// Flush echoed output of the central logger.
func Flush() {
	central.Flush()
}
