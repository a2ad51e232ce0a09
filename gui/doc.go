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

// Package gui defines the Surface interface used to present images to the
// user, and Canvas, an implementation of most of the Surface interface in
// memory.
//
// GUI implementations are found in the sub-packages. The sdlplay package
// embeds a Canvas and copies it to an SDL window when the surface is flipped.
package gui
