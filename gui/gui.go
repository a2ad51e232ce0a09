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

package gui

import (
	"image"
	"image/color"
)

// Surface is a drawable area that can be presented to the user. All drawing
// operations are clipped to the surface.
type Surface interface {
	Width() int
	Height() int

	// Fill the entire surface with a single colour
	Fill(col color.Color)

	// Blit the source image to the surface at 1:1 with the top-left corner
	// of the source at x, y
	Blit(src image.Image, x int, y int)

	// Scale the source image into the destination rectangle with
	// nearest-neighbour interpolation
	Scale(src image.Image, dst image.Rectangle)

	// Flip presents the surface to the user
	Flip() error
}
