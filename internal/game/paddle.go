package game

type Paddle struct {
	X      float64 // left edge
	Width  float64
	Height float64
	Gap    float64 // distance from the paddle's bottom to the canvas bottom
}

// Top is the y of the paddle's upper edge.
func (p *Paddle) Top(canvasH float64) float64 {
	return canvasH - p.Height - p.Gap
}

func (p *Paddle) Center(canvasW float64) {
	p.X = (canvasW - p.Width) / 2
	p.Clamp(canvasW)
}

// MoveTo centres the paddle on a pointer x.
func (p *Paddle) MoveTo(targetX, canvasW float64) {
	p.X = targetX - p.Width/2
	p.Clamp(canvasW)
}

// Nudge moves the paddle by dir (-1, 0, 1) at speed pixels per nominal frame.
func (p *Paddle) Nudge(dir int, speed, dt, canvasW float64) {
	if dir == 0 {
		return
	}
	p.X += float64(dir) * speed * dt
	p.Clamp(canvasW)
}

func (p *Paddle) Clamp(canvasW float64) {
	p.X = clampF(p.X, 0, max(0, canvasW-p.Width))
}

// HitPos maps x to [-1, 1] across the paddle, 0 at the centre.
func (p *Paddle) HitPos(x float64) float64 {
	if p.Width <= 0 {
		return 0
	}
	return clampF((x-p.X)/p.Width*2-1, -1, 1)
}

func (p *Paddle) Rect(canvasH float64) RectF {
	top := p.Top(canvasH)
	return RectF{X0: p.X, Y0: top, X1: p.X + p.Width, Y1: top + p.Height}
}
