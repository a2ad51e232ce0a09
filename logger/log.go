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
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Level     Level
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is the log used by the application. There is a central instance used
// by the package level functions but new instances can be created with
// NewLogger(), which is useful for testing.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// entries with a level lower than this are discarded
	minLevel Level

	// echo is nil if echoing is not required
	echo    *log.Logger
	echoOut io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
		minLevel:   Info,
	}
}

func detailString(detail any) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case string:
		return d
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

func (l *Logger) log(perm Permission, level Level, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	if level < l.minLevel {
		return
	}

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	d := strings.ReplaceAll(detailString(detail), "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || d != e.detail || tag != e.tag || level != e.Level {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Level: level, tag: tag, detail: d})
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		l.echo.Log(level.charm(), fmt.Sprintf("%s: %s", tag, d))
	}
}

// Log adds an entry at the Info level.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	l.log(perm, Info, tag, detail)
}

// Logf adds a formatted entry at the Info level.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	l.log(perm, Info, tag, fmt.Sprintf(detail, args...))
}

// Leveled adds a formatted entry at the specified level.
func (l *Logger) Leveled(perm Permission, level Level, tag string, detail string, args ...any) {
	l.log(perm, level, tag, fmt.Sprintf(detail, args...))
}

// SetLevel sets the minimum level of entries that will be recorded.
func (l *Logger) SetLevel(level Level) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.minLevel = level
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are made. A nil
// io.Writer stops echoing.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echoOut = output
	if output == nil {
		l.echo = nil
		return
	}

	l.echo = log.NewWithOptions(output, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
}

// Flush makes sure echoed output has reached its destination.
func (l *Logger) Flush() {
	l.crit.Lock()
	defer l.crit.Unlock()

	if f, ok := l.echoOut.(*os.File); ok {
		_ = f.Sync()
	}
}
