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

// Package pixmap wraps raw frame buffers as read-only images.
//
// A View implements the image.Image interface over a buffer in one of the
// supported Formats, without copying. The View never writes to the buffer.
//
// The 16-bit format is decoded with the high byte first. Frame buffers
// produced by a core on a little-endian machine must have their bytes
// swapped with SwapBytes16() before being wrapped. SwapBytes16() works in
// place so the swap should be performed on a copy of the buffer if the
// original must not be altered.
package pixmap
