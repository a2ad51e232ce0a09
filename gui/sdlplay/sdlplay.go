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

package sdlplay

import (
	"image/color"

	"github.com/jetsetilly/gpretro/curated"
	"github.com/jetsetilly/gpretro/gui"
	"github.com/jetsetilly/gpretro/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern for all errors returned by the SDL library.
const SDLError = "sdl: %v"

// Window is an SDL window that implements the gui.Surface and
// userinput.EventSource interfaces. Drawing is done to an in-memory canvas
// that is copied to the window surface by Flip().
//
// All functions must be called from the main thread.
type Window struct {
	*gui.Canvas

	window  *sdl.Window
	surface *sdl.Surface
}

// NewWindow creates and shows a resizable SDL window. SDL is initialised by
// this function.
func NewWindow(title string, width int, height int) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win := &Window{}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	err = win.fetchSurface()
	if err != nil {
		_ = win.window.Destroy()
		sdl.Quit()
		return nil, err
	}

	logger.Logf(logger.Allow, "sdlplay", "window %dx%d (%s)", win.Width(), win.Height(),
		sdl.GetPixelFormatName(uint(win.surface.Format.Format)))

	return win, nil
}

// the window surface is invalidated whenever the window is resized
func (win *Window) fetchSurface() error {
	srf, err := win.window.GetSurface()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	win.surface = srf

	if win.Canvas == nil {
		win.Canvas = gui.NewCanvas(int(srf.W), int(srf.H))
	} else {
		win.Canvas.Resize(int(srf.W), int(srf.H))
	}

	return nil
}

// Banner clears the window and shows a single line of text in the centre.
func (win *Window) Banner(s string) error {
	win.Fill(color.Black)
	win.PrintCentred(s, color.White)
	return win.Flip()
}

// Flip implements the gui.Surface interface.
func (win *Window) Flip() error {
	if win.surface.MustLock() {
		if err := win.surface.Lock(); err != nil {
			return curated.Errorf(SDLError, err)
		}
		defer win.surface.Unlock()
	}

	copySurface(win.surface, win.Canvas)

	if err := win.window.UpdateSurface(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// copy the canvas to the window surface. the canvas and the surface are the
// same size except briefly after a resize, in which case only the overlapping
// area is copied
func copySurface(srf *sdl.Surface, cnv *gui.Canvas) {
	img := cnv.Image()
	pix := srf.Pixels()
	pitch := int(srf.Pitch)

	w := min(int(srf.W), cnv.Width())
	h := min(int(srf.H), cnv.Height())

	switch srf.Format.Format {
	case uint32(sdl.PIXELFORMAT_ABGR8888):
		// byte order is the same as image.RGBA
		for y := 0; y < h; y++ {
			copy(pix[y*pitch:y*pitch+w*4], img.Pix[y*img.Stride:])
		}

	case uint32(sdl.PIXELFORMAT_ARGB8888), uint32(sdl.PIXELFORMAT_RGB888):
		for y := 0; y < h; y++ {
			d := pix[y*pitch:]
			s := img.Pix[y*img.Stride:]
			for x := 0; x < w*4; x += 4 {
				d[x] = s[x+2]
				d[x+1] = s[x+1]
				d[x+2] = s[x]
				d[x+3] = s[x+3]
			}
		}

	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				srf.Set(x, y, img.RGBAAt(x, y))
			}
		}
	}
}

// Close destroys the window and shuts down SDL.
func (win *Window) Close() error {
	defer sdl.Quit()
	if err := win.window.Destroy(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}
