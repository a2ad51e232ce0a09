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

package modalflag

import (
	"flag"
	"io"
	"time"
)

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc)
	Output io.Writer

	// whether Parse() has been called since the last call to NewArgs()
	parsed bool

	// a new flagset is created on every call to NewArgs()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args []string

	// replaces the "Usage:" line in the help message
	usage string

	// some programs will benefit from a verbose explanation
	additionalHelp string
}

// NewArgs with a string of arguments (from the command line for example).
// Any flags added before the call to NewArgs() are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// Usage sets the text that follows "Usage:" in the help message.
func (md *Modes) Usage(usage string) {
	md.usage = usage
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since a call to
// NewArgs(). Note that a Modes struct is considered to be Parsed() even if
// Parse() results in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments given to NewArgs(). Help messages are handled
// automatically by the function. The ParseHelp return value indicates that the
// help message has been printed and that the program should not continue.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	// set output of flags.Parse() to an instance of helpWriter
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.usage, md.additionalHelp)
			hw.Clear()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	return ParseContinue, nil
}

// PrintHelp prints the help message without parsing the arguments. Useful
// when the positional arguments are found to be wrong after a successful
// Parse().
func (md *Modes) PrintHelp() {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)
	hw.Write([]byte("Usage:\n"))
	md.flags.PrintDefaults()
	hw.Help(md.Output, md.usage, md.additionalHelp)
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
