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

package coreoptions

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/retro"
)

// Sentinel error patterns.
const (
	LoadError      = "options: load: %v"
	SaveError      = "options: save: %v"
	BadDeclaration = "options: bad declaration for %s: %q"
)

// header written to the top of a saved options file
const header = "# core options written by gpretro\n"

// Declaration of a variable by the core.
type Declaration struct {
	Key         string
	Description string
	Choices     []string
}

// Default returns the default value of the declared variable.
func (d Declaration) Default() string {
	return d.Choices[0]
}

func (d Declaration) valid(v string) bool {
	for _, c := range d.Choices {
		if c == v {
			return true
		}
	}
	return false
}

// Parse a core variable into a Declaration.
func Parse(v retro.Variable) (Declaration, error) {
	desc, choices, ok := strings.Cut(v.Value, ";")
	if !ok {
		return Declaration{}, curated.Errorf(BadDeclaration, v.Key, v.Value)
	}

	d := Declaration{
		Key:         v.Key,
		Description: strings.TrimSpace(desc),
	}

	for _, c := range strings.Split(strings.TrimLeft(choices, " "), "|") {
		if c != "" {
			d.Choices = append(d.Choices, c)
		}
	}
	if len(d.Choices) == 0 {
		return Declaration{}, curated.Errorf(BadDeclaration, v.Key, v.Value)
	}

	return d, nil
}

// Options is the store of variable values. The zero value is not usable; use
// New() or Load().
type Options struct {
	// values read from the options file
	user map[string]string

	// declarations received from the core
	declared map[string]Declaration
}

// New returns an empty Options store.
func New() *Options {
	return &Options{
		user:     make(map[string]string),
		declared: make(map[string]Declaration),
	}
}

// Load the user values from a YAML file. A missing file is not an error and
// results in an empty store.
func Load(path string) (*Options, error) {
	opts := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "options", "%s does not exist. using defaults", path)
			return opts, nil
		}
		return nil, curated.Errorf(LoadError, err)
	}

	if err := yaml.Unmarshal(data, &opts.user); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	// an empty document unmarshals to a nil map
	if opts.user == nil {
		opts.user = make(map[string]string)
	}

	logger.Logf(logger.Allow, "options", "loaded %d values from %s", len(opts.user), path)

	return opts, nil
}

// Declare variables as sent by the core with SET_VARIABLES. Any previous
// declarations are forgotten. Badly formed declarations are logged and
// skipped.
func (opts *Options) Declare(vars []retro.Variable) {
	opts.declared = make(map[string]Declaration)

	for _, v := range vars {
		d, err := Parse(v)
		if err != nil {
			logger.Leveled(logger.Allow, logger.Warn, "options", "%v", err)
			continue
		}
		opts.declared[d.Key] = d

		if u, ok := opts.user[d.Key]; ok && !d.valid(u) {
			logger.Leveled(logger.Allow, logger.Warn, "options", "%s: %q is not a valid choice. using %q", d.Key, u, d.Default())
		}
	}
}

// Declarations returns all declared variables sorted by key.
func (opts *Options) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(opts.declared))
	for _, d := range opts.declared {
		decls = append(decls, d)
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Key < decls[j].Key
	})
	return decls
}

// Get the value of the variable. Returns false if the variable has not been
// declared by the core.
func (opts *Options) Get(key string) (string, bool) {
	d, ok := opts.declared[key]
	if !ok {
		return "", false
	}
	if u, ok := opts.user[key]; ok && d.valid(u) {
		return u, true
	}
	return d.Default(), true
}

// Updated returns true if any value has changed since the last call to
// Get(). Values never change while the core is running so the result is
// always false.
func (opts *Options) Updated() bool {
	return false
}

// Save the current value of every declared variable, and every user value
// for an undeclared variable, to a YAML file.
func (opts *Options) Save(path string) error {
	out := make(map[string]string)
	for k, v := range opts.user {
		out[k] = v
	}
	for k := range opts.declared {
		out[k], _ = opts.Get(k)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	data = append([]byte(header), data...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
