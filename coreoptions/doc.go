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

// Package coreoptions stores the values of the variables (or "core options")
// declared by a core.
//
// A core declares its variables with the SET_VARIABLES environment command.
// Each declaration is a description followed by a list of possible values,
// the first of which is the default:
//
//	Frameskip; 0|1|2|3
//
// User chosen values are read from a YAML file containing a single mapping of
// variable key to value:
//
//	snes9x_frameskip: "1"
//
// A value in the file that is not one of the declared choices is ignored and
// the default is used instead. The file can be written back with Save(),
// which will include every declared variable, so that a file listing all of
// a core's options can be created by running the core once.
package coreoptions
