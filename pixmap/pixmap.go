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

package pixmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jetsetilly/gpretro/retro"
)

// Format is the host encoding of a pixel.
type Format int

// List of valid formats.
const (
	FormatInvalid Format = iota

	// 32-bit pixels, least significant byte first. the bytes in memory are
	// blue, green, red and an unused byte
	FormatXRGB8888

	// 16-bit pixels, most significant byte first. five bits of red, six bits
	// of green and five bits of blue
	FormatRGB565
)

func (f Format) String() string {
	switch f {
	case FormatXRGB8888:
		return "XRGB8888"
	case FormatRGB565:
		return "RGB565"
	}
	return "invalid"
}

// BytesPerPixel returns the number of bytes used by each pixel in the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatXRGB8888:
		return 4
	case FormatRGB565:
		return 2
	}
	return 0
}

// FromRetro returns the host format for the core pixel format. The second
// return value is false if the pixel format has no host encoding.
func FromRetro(f retro.PixelFormat) (Format, bool) {
	switch f {
	case retro.PixelXRGB8888:
		return FormatXRGB8888, true
	case retro.PixelRGB565:
		return FormatRGB565, true
	}
	return FormatInvalid, false
}

// NeedsSwap returns true if buffers produced by the core in the pixel format
// must be byte swapped before being wrapped by a View.
func NeedsSwap(f retro.PixelFormat) bool {
	return f == retro.PixelRGB565
}

// View is a read-only image over a pixel buffer.
type View struct {
	pix    []byte
	width  int
	height int
	stride int
	format Format
}

// NewView wraps pix as an image of width and height pixels. The stride is the
// number of bytes between the start of one row and the next.
func NewView(pix []byte, width int, height int, stride int, format Format) (*View, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("pixmap: invalid format")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixmap: invalid dimensions (%dx%d)", width, height)
	}
	if stride < width*bpp {
		return nil, fmt.Errorf("pixmap: stride too small (%d for width %d)", stride, width)
	}
	if len(pix) < stride*(height-1)+width*bpp {
		return nil, fmt.Errorf("pixmap: buffer too small (%d bytes)", len(pix))
	}

	return &View{
		pix:    pix,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Format returns the pixel format of the view.
func (v *View) Format() Format {
	return v.format
}

// ColorModel implements the image.Image interface.
func (v *View) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

// At implements the image.Image interface.
func (v *View) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return color.RGBA{}
	}
	return v.rgba(x, y)
}

func (v *View) rgba(x, y int) color.RGBA {
	switch v.format {
	case FormatXRGB8888:
		i := y*v.stride + x*4
		return color.RGBA{R: v.pix[i+2], G: v.pix[i+1], B: v.pix[i], A: 0xff}
	case FormatRGB565:
		i := y*v.stride + x*2
		p := uint16(v.pix[i])<<8 | uint16(v.pix[i+1])
		r := uint8(p >> 11)
		g := uint8(p>>5) & 0x3f
		b := uint8(p) & 0x1f
		return color.RGBA{
			R: r<<3 | r>>2,
			G: g<<2 | g>>4,
			B: b<<3 | b>>2,
			A: 0xff,
		}
	}
	return color.RGBA{}
}

// SwapBytes16 swaps every pair of bytes in the buffer. A trailing odd byte is
// left unchanged.
func SwapBytes16(buf []byte) {
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = buf[i+1], buf[i]
	}
}

// ConvertRGBA converts the view to an RGBA image. If dst is not nil and is the
// same size as the view it is reused, otherwise a new image is allocated.
func ConvertRGBA(dst *image.RGBA, v *View) *image.RGBA {
	if dst == nil || dst.Bounds() != v.Bounds() {
		dst = image.NewRGBA(v.Bounds())
	}

	for y := 0; y < v.height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < v.width; x++ {
			c := v.rgba(x, y)
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	return dst
}
