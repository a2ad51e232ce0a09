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

// Package libretro opens a core module with the dynamic loader and binds its
// function table. The resulting Module implements the retro.Core interface.
//
// The libretro ABI requires callbacks to be plain C functions, so the
// callbacks registered with the core are package level functions that
// forward to the retro.Host given to Load(). For this reason only one Module
// can be open at any one time.
//
// The core must not call any callback from a thread other than the one
// calling into the core.
package libretro
