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

package frontend

import (
	"image"
	"image/color"
	"io"

	"github.com/jetsetilly/gpretro/gui"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/pixmap"
	"github.com/jetsetilly/gpretro/retro"
)

// the colour of the surface outside the frame
var background = color.RGBA{A: 0xff}

// the smallest scale factor that causes the frame to be resampled
const minScale = 2

// ScaleFactor returns the largest whole number magnification of a frame that
// fits inside the surface, and the rectangle the frame should be drawn to.
//
// For factors less than two the rectangle is the frame size with its origin
// at the top-left corner of the surface. Otherwise it is the scaled frame
// size centred in the surface.
func ScaleFactor(surfaceWidth, surfaceHeight, frameWidth, frameHeight int) (int, image.Rectangle) {
	if frameWidth <= 0 || frameHeight <= 0 {
		return 0, image.Rectangle{}
	}

	f := min(surfaceWidth/frameWidth, surfaceHeight/frameHeight)
	if f < minScale {
		return f, image.Rect(0, 0, frameWidth, frameHeight)
	}

	w := frameWidth * f
	h := frameHeight * f
	x := (surfaceWidth - w) / 2
	y := (surfaceHeight - h) / 2
	return f, image.Rect(x, y, x+w, y+h)
}

// VideoPresenter draws frames from the core to a gui.Surface.
type VideoPresenter struct {
	ctx     *Context
	surface gui.Surface

	// private copy of a frame that needs its bytes swapping. reused between
	// frames
	swap []byte

	// conversion buffer for scaled frames
	rgba *image.RGBA
}

// NewVideoPresenter is the preferred method of initialisation for the
// VideoPresenter type.
func NewVideoPresenter(ctx *Context, surface gui.Surface) *VideoPresenter {
	return &VideoPresenter{
		ctx:     ctx,
		surface: surface,
	}
}

// Present a frame to the surface. A frame with no data is ignored. The frame
// data is never modified.
func (vid *VideoPresenter) Present(frame retro.Frame) {
	if frame.Data == nil {
		return
	}

	pf, _ := vid.ctx.PixelFormat()
	format, ok := pixmap.FromRetro(pf)
	if !ok {
		logger.Debugf(logger.Allow, "video", "cannot present frame in %s", pf)
		return
	}

	data := frame.Data
	if pixmap.NeedsSwap(pf) {
		if cap(vid.swap) < len(data) {
			vid.swap = make([]byte, len(data))
		}
		vid.swap = vid.swap[:len(data)]
		copy(vid.swap, data)
		pixmap.SwapBytes16(vid.swap)
		data = vid.swap
	}

	view, err := pixmap.NewView(data, frame.Width, frame.Height, frame.Pitch, format)
	if err != nil {
		logger.Warnf(logger.Allow, "video", "%v", err)
		vid.swap = vid.swap[:0]
		return
	}

	vid.surface.Fill(background)

	factor, dst := ScaleFactor(vid.surface.Width(), vid.surface.Height(), frame.Width, frame.Height)
	if factor >= minScale {
		vid.rgba = pixmap.ConvertRGBA(vid.rgba, view)
		vid.surface.Scale(vid.rgba, dst)
	} else {
		vid.surface.Blit(view, dst.Min.X, dst.Min.Y)
	}

	if err := vid.surface.Flip(); err != nil {
		logger.Warnf(logger.Allow, "video", "%v", err)
	}

	// release the private copy. the backing array is kept for the next frame
	vid.swap = vid.swap[:0]
}

// Close releases the surface if it supports being closed.
func (vid *VideoPresenter) Close() error {
	if c, ok := vid.surface.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
