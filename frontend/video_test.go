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

package frontend_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gpretro/frontend"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/test"
)

func TestScaleFactor(t *testing.T) {
	f, dst := frontend.ScaleFactor(640, 480, 320, 240)
	test.ExpectEquality(t, f, 2)
	test.ExpectEquality(t, dst, image.Rect(0, 0, 640, 480))

	f, dst = frontend.ScaleFactor(640, 480, 256, 224)
	test.ExpectEquality(t, f, 2)
	test.ExpectEquality(t, dst, image.Rect(64, 16, 576, 464))
	test.ExpectEquality(t, dst.Dx(), 512)
	test.ExpectEquality(t, dst.Dy(), 448)

	f, dst = frontend.ScaleFactor(640, 480, 160, 100)
	test.ExpectEquality(t, f, 4)
	test.ExpectEquality(t, dst, image.Rect(0, 40, 640, 440))

	// factor of one is a direct blit
	f, dst = frontend.ScaleFactor(640, 480, 400, 300)
	test.ExpectEquality(t, f, 1)
	test.ExpectEquality(t, dst, image.Rect(0, 0, 400, 300))

	// frame larger than the surface on one axis only
	f, _ = frontend.ScaleFactor(640, 480, 320, 500)
	test.ExpectEquality(t, f, 0)

	f, _ = frontend.ScaleFactor(640, 480, 0, 0)
	test.ExpectEquality(t, f, 0)
}

// xrgb returns a frame filled with a single colour in the XRGB8888 format
func xrgb(width int, height int, col color.RGBA) retro.Frame {
	pitch := width * 4
	data := make([]byte, pitch*height)
	for i := 0; i < len(data); i += 4 {
		data[i] = col.B
		data[i+1] = col.G
		data[i+2] = col.R
	}
	return retro.Frame{Data: data, Width: width, Height: height, Pitch: pitch}
}

func newPresenter(t *testing.T, format retro.PixelFormat, width int, height int) (*frontend.VideoPresenter, *surface) {
	t.Helper()
	ctx := frontend.NewContext()
	env := frontend.NewEnvironment(ctx, nil, ".", ".")
	test.DemandSuccess(t, env.SetPixelFormat(format))
	srf := newSurface(width, height)
	return frontend.NewVideoPresenter(ctx, srf), srf
}

func TestPresentScaled(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)

	col := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	vid.Present(xrgb(256, 224, col))

	test.ExpectEquality(t, srf.fills, 1)
	test.ExpectEquality(t, srf.scales, 1)
	test.ExpectEquality(t, srf.blits, 0)
	test.ExpectEquality(t, srf.flips, 1)
	test.ExpectEquality(t, srf.dst, image.Rect(64, 16, 576, 464))

	img := srf.Image()
	test.ExpectEquality(t, img.RGBAAt(64, 16), col)
	test.ExpectEquality(t, img.RGBAAt(575, 463), col)

	// outside the destination is the background
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(63, 16), color.RGBA{A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(576, 464), color.RGBA{A: 0xff})
}

func TestPresentUnscaled(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)

	col := color.RGBA{R: 0xff, A: 0xff}
	vid.Present(xrgb(800, 600, col))

	test.ExpectEquality(t, srf.scales, 0)
	test.ExpectEquality(t, srf.blits, 1)
	test.ExpectEquality(t, srf.flips, 1)
	test.ExpectEquality(t, srf.dst.Min, image.Point{})
	test.ExpectEquality(t, srf.Image().RGBAAt(639, 479), col)

	// a frame that fits exactly once is not resampled
	vid.Present(xrgb(640, 480, col))
	test.ExpectEquality(t, srf.scales, 0)
	test.ExpectEquality(t, srf.blits, 2)
}

func TestPresentNilFrame(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)

	vid.Present(retro.Frame{Width: 320, Height: 240, Pitch: 1280})
	test.ExpectEquality(t, srf.fills, 0)
	test.ExpectEquality(t, srf.flips, 0)
}

func TestPresentNoPixelFormat(t *testing.T) {
	ctx := frontend.NewContext()
	srf := newSurface(640, 480)
	vid := frontend.NewVideoPresenter(ctx, srf)

	vid.Present(xrgb(320, 240, color.RGBA{A: 0xff}))
	test.ExpectEquality(t, srf.fills, 0)
	test.ExpectEquality(t, srf.flips, 0)
}

func TestPresentRGB565(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelRGB565, 640, 480)

	// pure red in little-endian RGB565
	const w, h = 320, 240
	data := make([]byte, w*h*2)
	for i := 0; i < len(data); i += 2 {
		data[i] = 0x00
		data[i+1] = 0xf8
	}
	original := bytes.Clone(data)

	vid.Present(retro.Frame{Data: data, Width: w, Height: h, Pitch: w * 2})

	// the frame belongs to the core and must not be changed
	test.ExpectSuccess(t, bytes.Equal(data, original))

	test.ExpectEquality(t, srf.scales, 1)
	test.ExpectEquality(t, srf.Image().RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, srf.Image().RGBAAt(639, 479), color.RGBA{R: 0xff, A: 0xff})

	// a second frame of a different size reuses the private copy
	small := data[:16*16*2]
	vid.Present(retro.Frame{Data: small, Width: 16, Height: 16, Pitch: 32})
	test.ExpectSuccess(t, bytes.Equal(data, original))
	test.ExpectEquality(t, srf.dst, image.Rect(80, 0, 560, 480))
}

func TestPresentShrinkingFrame(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	vid.Present(xrgb(320, 240, white))
	test.ExpectEquality(t, srf.Image().RGBAAt(0, 0), white)

	// no part of the previous frame remains
	vid.Present(xrgb(300, 200, white))
	test.ExpectEquality(t, srf.Image().RGBAAt(0, 0), color.RGBA{A: 0xff})
}

func TestPresentInvalidFrame(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)

	col := color.RGBA{G: 0xff, A: 0xff}
	vid.Present(xrgb(320, 240, col))

	// pitch is too short for the width. the previous frame is left untouched
	frame := xrgb(320, 240, col)
	frame.Pitch = 8
	vid.Present(frame)

	test.ExpectEquality(t, srf.fills, 1)
	test.ExpectEquality(t, srf.flips, 1)
	test.ExpectEquality(t, srf.Image().RGBAAt(320, 240), col)
}

func TestPresenterClose(t *testing.T) {
	vid, srf := newPresenter(t, retro.PixelXRGB8888, 640, 480)
	test.ExpectSuccess(t, vid.Close())
	test.ExpectSuccess(t, srf.closed)
}
