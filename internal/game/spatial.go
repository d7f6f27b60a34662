package game

// RectF is an axis-aligned rectangle. Bricks use it in canvas pixels, crops
// use it in normalized [0,1] image space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Intersects reports strict overlap; touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) W() float64 { return r.X1 - r.X0 }
func (r RectF) H() float64 { return r.Y1 - r.Y0 }

func (r RectF) Center() (float64, float64) {
	return (r.X0 + r.X1) * 0.5, (r.Y0 + r.Y1) * 0.5
}

// Overlaps returns how far the box b reaches past each side of r:
// left is b's right edge minus r's left edge, and so on.
func (r RectF) Overlaps(b RectF) (left, right, top, bottom float64) {
	left = b.X1 - r.X0
	right = r.X1 - b.X0
	top = b.Y1 - r.Y0
	bottom = r.Y1 - b.Y0
	return
}

// squareAround returns the bounding square of a circle.
func squareAround(x, y, radius float64) RectF {
	return RectF{X0: x - radius, Y0: y - radius, X1: x + radius, Y1: y + radius}
}
