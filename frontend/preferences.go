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
	"time"

	"github.com/jetsetilly/gpretro/paths"
	"github.com/jetsetilly/gpretro/prefs"
)

// PreferencesFile is the name of the preferences file in the resource path.
const PreferencesFile = "preferences"

// Preferences that persist between runs of the program.
type Preferences struct {
	dsk *prefs.Disk

	WindowWidth  prefs.Int
	WindowHeight prefs.Int
	AudioLatency prefs.Duration
	SystemDir    prefs.String
	SaveDir      prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the location of the preferences file. An
// empty path means the default location in the resource path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", PreferencesFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("gpretro.window.width", &p.WindowWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gpretro.window.height", &p.WindowHeight)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gpretro.audio.latency", &p.AudioLatency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gpretro.directory.system", &p.SystemDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gpretro.directory.save", &p.SaveDir)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.WindowWidth.Set(640)
	_ = p.WindowHeight.Set(480)
	_ = p.AudioLatency.Set(64 * time.Millisecond)
	_ = p.SystemDir.Set(fallbackDirectory)
	_ = p.SaveDir.Set(fallbackDirectory)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
