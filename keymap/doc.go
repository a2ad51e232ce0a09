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

// Package keymap translates host key codes to the two vocabularies used by
// the core: joypad button identifiers and core key values.
//
// Host key codes are USB HID keyboard usage ids. These are the same values
// used by SDL for scancodes so no translation is required by the SDL
// backend.
//
// Both tables are total. A host key with no mapping translates to
// NoJoypad or retro.KeyUnknown, never to an undefined value.
package keymap
