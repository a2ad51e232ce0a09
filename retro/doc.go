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

// Package retro describes the interface between gpretro and a core module
// conforming to the libretro ABI.
//
// The package contains the vocabulary of the ABI (environment commands, pixel
// formats, device classes, button and key identifiers, etc.) expressed as Go
// types, and two interfaces: Core, which is the function table of a loaded
// module, and Host, which is the set of callbacks the module calls into.
//
// Nothing in this package depends on cgo. The libretro sub-package provides
// the implementation of Core and forwards the module's callbacks to a Host.
package retro
