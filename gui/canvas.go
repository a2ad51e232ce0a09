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

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA image that implements the drawing operations of the
// Surface interface. Flip() does nothing.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(width int, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Resize the canvas. The contents of the canvas after resizing are undefined.
func (cnv *Canvas) Resize(width int, height int) {
	if width == cnv.Width() && height == cnv.Height() {
		return
	}
	cnv.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image returns the underlying image of the canvas. The image is replaced by
// a call to Resize().
func (cnv *Canvas) Image() *image.RGBA {
	return cnv.img
}

// Width implements the Surface interface.
func (cnv *Canvas) Width() int {
	return cnv.img.Bounds().Dx()
}

// Height implements the Surface interface.
func (cnv *Canvas) Height() int {
	return cnv.img.Bounds().Dy()
}

// Fill implements the Surface interface.
func (cnv *Canvas) Fill(col color.Color) {
	draw.Draw(cnv.img, cnv.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit implements the Surface interface.
func (cnv *Canvas) Blit(src image.Image, x int, y int) {
	sr := src.Bounds()
	dr := sr.Sub(sr.Min).Add(image.Pt(x, y))
	draw.Draw(cnv.img, dr, src, sr.Min, draw.Src)
}

// Scale implements the Surface interface.
func (cnv *Canvas) Scale(src image.Image, dst image.Rectangle) {
	draw.NearestNeighbor.Scale(cnv.img, dst, src, src.Bounds(), draw.Src, nil)
}

// Flip implements the Surface interface.
func (cnv *Canvas) Flip() error {
	return nil
}

// PrintCentred draws a single line of text in the centre of the canvas.
func (cnv *Canvas) PrintCentred(s string, fg color.Color) {
	face := basicfont.Face7x13

	d := &font.Drawer{
		Dst:  cnv.img,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	m := face.Metrics()
	w := d.MeasureString(s).Round()
	x := (cnv.Width() - w) / 2
	y := (cnv.Height() + m.Ascent.Round() - m.Descent.Round()) / 2

	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
