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

package pixmap_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gpretro/pixmap"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/test"
)

func TestFromRetro(t *testing.T) {
	f, ok := pixmap.FromRetro(retro.PixelXRGB8888)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, pixmap.FormatXRGB8888)

	f, ok = pixmap.FromRetro(retro.PixelRGB565)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, pixmap.FormatRGB565)

	_, ok = pixmap.FromRetro(retro.Pixel0RGB1555)
	test.ExpectFailure(t, ok)
	_, ok = pixmap.FromRetro(retro.PixelFormat(100))
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, pixmap.NeedsSwap(retro.PixelRGB565))
	test.ExpectFailure(t, pixmap.NeedsSwap(retro.PixelXRGB8888))
}

func TestSwapRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0x01, 0x02, 0x03, 0xf8, 0x00, 0x07, 0xe0, 0xaa}
	buf := bytes.Clone(orig)

	pixmap.SwapBytes16(buf)
	test.ExpectEquality(t, buf[0], orig[1])
	test.ExpectEquality(t, buf[1], orig[0])

	// trailing odd byte is untouched
	test.ExpectEquality(t, buf[8], orig[8])

	pixmap.SwapBytes16(buf)
	test.ExpectSuccess(t, bytes.Equal(buf, orig))
}

func TestViewXRGB8888(t *testing.T) {
	// 2x2 image with a stride of 12 bytes (one pixel of padding per row)
	pix := []byte{
		0x30, 0x20, 0x10, 0x00, 0xff, 0xff, 0xff, 0x00, 0xde, 0xad, 0xbe, 0xef,
		0x00, 0x00, 0xff, 0x00, 0x00, 0xff, 0x00, 0x00, 0xde, 0xad, 0xbe, 0xef,
	}
	orig := bytes.Clone(pix)

	v, err := pixmap.NewView(pix, 2, 2, 12, pixmap.FormatXRGB8888)
	test.DemandSuccess(t, err)
	test.ExpectImplements[image.Image](t, v)
	test.ExpectEquality(t, v.Bounds(), image.Rect(0, 0, 2, 2))

	test.ExpectEquality(t, v.At(0, 0).(color.RGBA), color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	test.ExpectEquality(t, v.At(1, 0).(color.RGBA), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, v.At(0, 1).(color.RGBA), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, v.At(1, 1).(color.RGBA), color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, v.At(2, 0).(color.RGBA), color.RGBA{})

	rgba := pixmap.ConvertRGBA(nil, v)
	test.ExpectEquality(t, rgba.RGBAAt(0, 1), color.RGBA{R: 0xff, A: 0xff})

	// the buffer is never written to
	test.ExpectSuccess(t, bytes.Equal(pix, orig))
}

func TestViewRGB565(t *testing.T) {
	// pure red, green and blue in little-endian order as produced by a core
	pix := []byte{0x00, 0xf8, 0xe0, 0x07, 0x1f, 0x00}
	pixmap.SwapBytes16(pix)

	v, err := pixmap.NewView(pix, 3, 1, 6, pixmap.FormatRGB565)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, v.At(0, 0).(color.RGBA), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, v.At(1, 0).(color.RGBA), color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, v.At(2, 0).(color.RGBA), color.RGBA{B: 0xff, A: 0xff})

	// destination image of the correct size is reused
	dst := image.NewRGBA(image.Rect(0, 0, 3, 1))
	test.ExpectEquality(t, pixmap.ConvertRGBA(dst, v), dst)
	test.ExpectEquality(t, dst.RGBAAt(2, 0), color.RGBA{B: 0xff, A: 0xff})

	// destination image of the wrong size is not reused
	dst = image.NewRGBA(image.Rect(0, 0, 1, 1))
	test.ExpectInequality(t, pixmap.ConvertRGBA(dst, v), dst)
}

func TestNewViewErrors(t *testing.T) {
	pix := make([]byte, 16)

	_, err := pixmap.NewView(pix, 2, 2, 8, pixmap.FormatInvalid)
	test.ExpectFailure(t, err)
	_, err = pixmap.NewView(pix, 0, 2, 8, pixmap.FormatXRGB8888)
	test.ExpectFailure(t, err)
	_, err = pixmap.NewView(pix, 2, 2, 4, pixmap.FormatXRGB8888)
	test.ExpectFailure(t, err)
	_, err = pixmap.NewView(pix, 2, 3, 8, pixmap.FormatXRGB8888)
	test.ExpectFailure(t, err)
	_, err = pixmap.NewView(pix, 2, 2, 8, pixmap.FormatXRGB8888)
	test.ExpectSuccess(t, err)
}
