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

// Package prefs facilitates the storage of preferential values on disk.
//
// Values are declared with one of the types in this package (Bool, Int,
// String, Duration) and then added to a Disk instance with a key:
//
//	var latency prefs.Duration
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("gpretro.audio.latency", &latency)
//	err = dsk.Load()
//
// The file on disk is a simple text file of "key :: value" lines, headed by
// WarningBoilerPlate. Keys in the file that have not been added to the Disk
// are preserved when the file is saved, so more than one Disk instance can
// share the same file.
package prefs
