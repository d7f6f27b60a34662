package game

import "iter"

// Brick is one grid cell. Rect is derived by Layout and only meaningful
// after the latest layout pass; Crop never changes for a given (Col, Row).
type Brick struct {
	Col, Row int
	Alive    bool
	Bomb     bool
	Rect     RectF // canvas pixels
	Crop     RectF // normalized source-image rect
}

// Grid owns the bricks of one stage, stored column-major.
type Grid struct {
	Cols, Rows int
	Geometry   GridConfig

	bricks    []Brick
	destroyed int
	layoutW   float64
}

func NewGrid(geom GridConfig) *Grid {
	return &Grid{Geometry: geom}
}

// Initialize rebuilds the grid with every brick alive and picks bombs cells
// uniformly without replacement.
func (g *Grid) Initialize(cols, rows int, canvasW float64, bombs int, rng *Rand) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	g.Cols, g.Rows = cols, rows
	g.destroyed = 0

	n := cols * rows
	if cap(g.bricks) >= n {
		g.bricks = g.bricks[:n]
	} else {
		g.bricks = make([]Brick, n)
	}
	for c := range cols {
		for r := range rows {
			g.bricks[c*rows+r] = Brick{
				Col:   c,
				Row:   r,
				Alive: true,
				Crop: RectF{
					X0: float64(c) / float64(cols),
					Y0: float64(r) / float64(rows),
					X1: float64(c+1) / float64(cols),
					Y1: float64(r+1) / float64(rows),
				},
			}
		}
	}
	if rng != nil {
		for _, i := range rng.Sample(n, bombs) {
			g.bricks[i].Bomb = true
		}
	}
	g.layoutW = -1
	g.Layout(canvasW)
}

// BrickWidth is the shared brick width for a canvas width.
func (g *Grid) BrickWidth(canvasW float64) float64 {
	if g.Cols == 0 {
		return 0
	}
	return (canvasW-2*g.Geometry.OffsetLeft)/float64(g.Cols) - g.Geometry.Padding
}

// Layout recomputes every brick rect for the given canvas width.
func (g *Grid) Layout(canvasW float64) {
	if canvasW == g.layoutW {
		return
	}
	g.layoutW = canvasW
	bw := g.BrickWidth(canvasW)
	bh := g.Geometry.BrickHeight
	pad := g.Geometry.Padding
	for i := range g.bricks {
		b := &g.bricks[i]
		x := float64(b.Col)*(bw+pad) + g.Geometry.OffsetLeft
		y := float64(b.Row)*(bh+pad) + g.Geometry.OffsetTop
		b.Rect = RectF{X0: x, Y0: y, X1: x + bw, Y1: y + bh}
	}
}

// Bottom returns the lowest pixel row covered by the grid band.
func (g *Grid) Bottom() float64 {
	if g.Rows == 0 {
		return g.Geometry.OffsetTop
	}
	return g.Geometry.OffsetTop + float64(g.Rows)*(g.Geometry.BrickHeight+g.Geometry.Padding) - g.Geometry.Padding
}

func (g *Grid) inBounds(c, r int) bool {
	return c >= 0 && c < g.Cols && r >= 0 && r < g.Rows
}

// At returns the brick at (c, r), or nil outside the grid.
func (g *Grid) At(c, r int) *Brick {
	if !g.inBounds(c, r) {
		return nil
	}
	return &g.bricks[c*g.Rows+r]
}

// MarkDestroyed kills the brick at (c, r). It reports whether the brick was
// alive; repeated calls and out-of-range cells are no-ops.
func (g *Grid) MarkDestroyed(c, r int) bool {
	b := g.At(c, r)
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	g.destroyed++
	return true
}

// Alive yields alive bricks column by column, top to bottom.
func (g *Grid) Alive() iter.Seq[*Brick] {
	return func(yield func(*Brick) bool) {
		for i := range g.bricks {
			b := &g.bricks[i]
			if !b.Alive {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

func (g *Grid) Destroyed() int { return g.destroyed }
func (g *Grid) Total() int     { return len(g.bricks) }
func (g *Grid) AliveCount() int {
	return len(g.bricks) - g.destroyed
}

// Cleared reports whether every brick of the stage is gone.
func (g *Grid) Cleared() bool {
	return g.destroyed == len(g.bricks)
}

// Bombs counts bombs still alive.
func (g *Grid) Bombs() int {
	n := 0
	for b := range g.Alive() {
		if b.Bomb {
			n++
		}
	}
	return n
}
