// Package raster draws a session into an in-memory RGBA framebuffer for
// front-ends without a GPU renderer of their own.
package raster

import (
	"image"
	"math"

	"photobreak/internal/game"
)

// Frame is an opaque RGBA framebuffer.
type Frame struct {
	Img *image.RGBA
}

func NewFrame(w, h int) *Frame {
	return &Frame{Img: image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))}
}

func (f *Frame) W() int { return f.Img.Rect.Dx() }
func (f *Frame) H() int { return f.Img.Rect.Dy() }

// Resize reallocates the buffer when the size changes.
func (f *Frame) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == f.W() && h == f.H() {
		return
	}
	f.Img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (f *Frame) Clear(c game.RGB) {
	p := f.Img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		p[i+0] = c.R
		p[i+1] = c.G
		p[i+2] = c.B
		p[i+3] = 255
	}
}

// At returns the colour at (x, y); out of range reads are black.
func (f *Frame) At(x, y int) game.RGB {
	if x < 0 || y < 0 || x >= f.W() || y >= f.H() {
		return game.RGB{}
	}
	o := f.Img.PixOffset(x, y)
	return game.RGB{R: f.Img.Pix[o], G: f.Img.Pix[o+1], B: f.Img.Pix[o+2]}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// blend mixes c into the pixel at byte offset o with alpha a.
func (f *Frame) blend(o int, c game.RGB, a float64, additive bool) {
	p := f.Img.Pix
	if additive {
		p[o+0] = clampByte(float64(p[o+0]) + float64(c.R)*a)
		p[o+1] = clampByte(float64(p[o+1]) + float64(c.G)*a)
		p[o+2] = clampByte(float64(p[o+2]) + float64(c.B)*a)
	} else {
		invA := 1.0 - a
		p[o+0] = clampByte(float64(p[o+0])*invA + float64(c.R)*a)
		p[o+1] = clampByte(float64(p[o+1])*invA + float64(c.G)*a)
		p[o+2] = clampByte(float64(p[o+2])*invA + float64(c.B)*a)
	}
	p[o+3] = 255
}

func (f *Frame) Set(x, y int, c game.RGB) {
	if x < 0 || y < 0 || x >= f.W() || y >= f.H() {
		return
	}
	f.blend(f.Img.PixOffset(x, y), c, 1, false)
}

// span converts [lo, hi) in float pixels to a clipped integer range.
func span(lo, hi float64, limit int) (int, int) {
	a := int(math.Floor(lo))
	b := int(math.Ceil(hi)) - 1
	return max(a, 0), min(b, limit-1)
}

// FillRect fills [x0,x1) x [y0,y1).
func (f *Frame) FillRect(x0, y0, x1, y1 float64, c game.RGB, a float64, additive bool) {
	if a <= 0 || x1 <= x0 || y1 <= y0 {
		return
	}
	a = math.Min(a, 1)
	minX, maxX := span(x0, x1, f.W())
	minY, maxY := span(y0, y1, f.H())
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			f.blend(f.Img.PixOffset(px, py), c, a, additive)
		}
	}
}

// StrokeRect draws a one pixel outline just inside the rect.
func (f *Frame) StrokeRect(x0, y0, x1, y1 float64, c game.RGB, a float64) {
	f.FillRect(x0, y0, x1, y0+1, c, a, false)
	f.FillRect(x0, y1-1, x1, y1, c, a, false)
	f.FillRect(x0, y0+1, x0+1, y1-1, c, a, false)
	f.FillRect(x1-1, y0+1, x1, y1-1, c, a, false)
}

// FillSquare fills a square of the given size centred on (cx, cy).
func (f *Frame) FillSquare(cx, cy, size float64, c game.RGB, a float64, additive bool) {
	if size < 0.5 {
		size = 0.5
	}
	half := size * 0.5
	f.FillRect(cx-half, cy-half, cx+half, cy+half, c, a, additive)
}

func (f *Frame) FillCircle(cx, cy, rad float64, c game.RGB, a float64, additive bool) {
	if rad < 0.5 {
		rad = 0.5
	}
	if a <= 0 {
		return
	}
	a = math.Min(a, 1)
	minX, maxX := span(cx-rad, cx+rad, f.W())
	minY, maxY := span(cy-rad, cy+rad, f.H())
	r2 := rad * rad
	for py := minY; py <= maxY; py++ {
		dy := (float64(py) + 0.5) - cy
		for px := minX; px <= maxX; px++ {
			dx := (float64(px) + 0.5) - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			f.blend(f.Img.PixOffset(px, py), c, a, additive)
		}
	}
}

// BlitRegion draws the src region of img into the dst rect with nearest
// sampling. src is in normalized image coordinates.
func (f *Frame) BlitRegion(img *image.RGBA, src, dst game.RectF) {
	if img == nil || dst.W() <= 0 || dst.H() <= 0 {
		return
	}
	iw, ih := img.Rect.Dx(), img.Rect.Dy()
	minX, maxX := span(dst.X0, dst.X1, f.W())
	minY, maxY := span(dst.Y0, dst.Y1, f.H())
	for py := minY; py <= maxY; py++ {
		v := ((float64(py) + 0.5) - dst.Y0) / dst.H()
		sy := min(max(int((src.Y0+v*src.H())*float64(ih)), 0), ih-1)
		for px := minX; px <= maxX; px++ {
			u := ((float64(px) + 0.5) - dst.X0) / dst.W()
			sx := min(max(int((src.X0+u*src.W())*float64(iw)), 0), iw-1)
			so := img.PixOffset(img.Rect.Min.X+sx, img.Rect.Min.Y+sy)
			do := f.Img.PixOffset(px, py)
			copy(f.Img.Pix[do:do+3], img.Pix[so:so+3])
			f.Img.Pix[do+3] = 255
		}
	}
}
