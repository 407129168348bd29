// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package termcarousel

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// canvas is a grid of pixels. two rows of pixels are drawn in each row of
// character cells
type canvas struct {
	width  int
	height int
	px     []tcell.Color
}

func (cnv *canvas) resize(width int, height int) {
	cnv.width = width
	cnv.height = height
	if len(cnv.px) < width*height {
		cnv.px = make([]tcell.Color, width*height)
	}
	cnv.px = cnv.px[:width*height]
}

func (cnv *canvas) fill(col tcell.Color) {
	for i := range cnv.px {
		cnv.px[i] = col
	}
}

func (cnv *canvas) set(x int, y int, col tcell.Color) {
	if x < 0 || y < 0 || x >= cnv.width || y >= cnv.height {
		return
	}
	cnv.px[y*cnv.width+x] = col
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// draw image scaled to the destination rectangle. nearest neighbour scaling
// is used
func (cnv *canvas) draw(img image.Image, dest image.Rectangle) {
	if img == nil || dest.Empty() {
		return
	}

	bounds := img.Bounds()
	clip := dest.Intersect(image.Rect(0, 0, cnv.width, cnv.height))

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := bounds.Min.Y + (y-dest.Min.Y)*bounds.Dy()/dest.Dy()
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := bounds.Min.X + (x-dest.Min.X)*bounds.Dx()/dest.Dx()
			cnv.set(x, y, toColor(img.At(sx, sy)))
		}
	}
}

// show copies the canvas to the screen
func (cnv *canvas) show(screen tcell.Screen) {
	for y := 0; y+1 < cnv.height; y += 2 {
		for x := 0; x < cnv.width; x++ {
			style := tcell.StyleDefault.
				Foreground(cnv.px[y*cnv.width+x]).
				Background(cnv.px[(y+1)*cnv.width+x])
			screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}
