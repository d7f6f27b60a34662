package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"photobreak/internal/game"
)

// Glyph metrics of the built-in face.
const (
	GlyphW = 7
	GlyphH = 13
)

// TextWidth returns the pixel width of s in the built-in face.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// Text draws s with its top-left corner at (x, y).
func (f *Frame) Text(x, y int, s string, c game.RGB) {
	d := font.Drawer{
		Dst:  f.Img,
		Src:  image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centred on cx.
func (f *Frame) TextCentered(cx, y int, s string, c game.RGB) {
	f.Text(cx-TextWidth(s)/2, y, s, c)
}

// TextShadow draws s with a one pixel dark drop shadow.
func (f *Frame) TextShadow(x, y int, s string, c game.RGB) {
	f.Text(x+1, y+1, s, game.RGB{})
	f.Text(x, y, s, c)
}
