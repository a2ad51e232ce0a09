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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestLevels(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	// debug entries are discarded by default
	log.Leveled(logger.Allow, logger.Debug, "tag", "debug %d", 1)
	log.Leveled(logger.Allow, logger.Warn, "tag", "warn %d", 2)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: warn 2\n")

	w.Reset()
	log.Clear()
	log.SetLevel(logger.Debug)
	log.Leveled(logger.Allow, logger.Debug, "tag", "debug %d", 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: debug 1\n")

	w.Reset()
	log.Clear()
	log.SetLevel(logger.Error)
	log.Leveled(logger.Allow, logger.Warn, "tag", "warn")
	log.Leveled(logger.Allow, logger.Error, "tag", "error")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: error\n")
}

func TestParseLevel(t *testing.T) {
	lvl, err := logger.ParseLevel("debug")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lvl, logger.Debug)

	lvl, err = logger.ParseLevel("WRN")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, lvl, logger.Warn)

	_, err = logger.ParseLevel("loud")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, logger.Error.String(), "err")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

type refuse struct{}

func (refuse) AllowLogging() bool {
	return false
}

func TestCentralPermission(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	w := &strings.Builder{}
	logger.Logf(refuse{}, "tag", "refused %d", 1)
	logger.Warnf(refuse{}, "tag", "refused %d", 2)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Logf(logger.Allow, "tag", "allowed %d", 3)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: allowed 3\n")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectSuccess(t, strings.Contains(w.String(), "tag: echoed"))

	w.Reset()
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "")
}
