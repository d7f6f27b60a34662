package photo

import (
	"image"
	"image/color"
	"math"
)

// Demo paints a synthetic portrait-like picture so the game can run without
// a photo: a gradient sky, a sun and a smiling face. The same seed always
// gives the same picture.
func Demo(w, h int, seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	hue := float64(seed%360) / 360
	top := hsv(hue, 0.55, 0.95)
	bottom := hsv(math.Mod(hue+0.35, 1), 0.7, 0.55)

	fw, fh := float64(w), float64(h)
	cx, cy := fw*0.5, fh*0.55
	faceR := math.Min(fw, fh) * 0.32
	sunX, sunY, sunR := fw*0.8, fh*0.15, math.Min(fw, fh)*0.09

	for y := range h {
		t := float64(y) / math.Max(fh-1, 1)
		bg := mix(top, bottom, t)
		for x := range w {
			px, py := float64(x)+0.5, float64(y)+0.5
			c := bg
			// Diagonal stripes give every brick some texture.
			if int(px+py)/24%2 == 0 {
				c = mix(c, color.RGBA{255, 255, 255, 255}, 0.08)
			}
			if math.Hypot(px-sunX, py-sunY) < sunR {
				c = color.RGBA{255, 220, 90, 255}
			}
			dx, dy := px-cx, py-cy
			d := math.Hypot(dx, dy)
			switch {
			case d < faceR:
				c = color.RGBA{250, 205, 150, 255}
				if eye(dx+faceR*0.35, dy+faceR*0.25, faceR*0.11) || eye(dx-faceR*0.35, dy+faceR*0.25, faceR*0.11) {
					c = color.RGBA{40, 30, 40, 255}
				}
				// Smile: a band of the lower half circle.
				if dy > faceR*0.15 && math.Abs(math.Hypot(dx, dy-faceR*0.05)-faceR*0.5) < faceR*0.06 {
					c = color.RGBA{190, 40, 70, 255}
				}
			case d < faceR*1.06:
				c = color.RGBA{60, 40, 50, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func eye(dx, dy, r float64) bool {
	return dx*dx+dy*dy < r*r
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), 255}
}

func hsv(h, s, v float64) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
