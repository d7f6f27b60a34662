package game

import "math"

// Ball velocity is in canvas pixels per nominal frame.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// FrameScale converts the time since the previous frame into a motion
// multiplier: 1.0 at the nominal interval, capped at MaxFrameScale so a
// stalled frame cannot tunnel the ball. A negative last marks the first frame
// after (re)entering play.
func FrameScale(now, last, interval float64) float64 {
	if last < 0 || interval <= 0 {
		return 1
	}
	dt := (now - last) / interval
	if dt < 0 {
		return 0
	}
	return math.Min(dt, MaxFrameScale)
}

// TargetSpeed is the ball speed for the share of the stage already cleared.
func TargetSpeed(base, spread float64, stageScore, stageTotal int) float64 {
	if stageTotal <= 0 {
		return base
	}
	return base + float64(stageScore)/float64(stageTotal)*spread
}

func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Tentative returns where the ball would be after dt without moving it.
func (b Ball) Tentative(dt float64) (float64, float64) {
	return b.X + b.DX*dt, b.Y + b.DY*dt
}

func (b *Ball) Commit(dt float64) {
	b.X += b.DX * dt
	b.Y += b.DY * dt
}

// Bounds returns the ball's bounding square at (x, y).
func (b Ball) Bounds(x, y float64) RectF {
	return squareAround(x, y, b.Radius)
}

// RescaleTo keeps the direction and sets the speed. A stopped ball has no
// direction to keep, so it is left alone and false is returned.
func (b *Ball) RescaleTo(speed float64) bool {
	cur := b.Speed()
	if cur == 0 {
		return false
	}
	k := speed / cur
	b.DX *= k
	b.DY *= k
	return true
}

// Launch places the ball and sends it upward at angle radians from vertical,
// positive to the right.
func (b *Ball) Launch(x, y, speed, angle float64) {
	b.X, b.Y = x, y
	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
}

// ClampTo keeps the ball inside the side walls and below the ceiling.
func (b *Ball) ClampTo(canvasW float64) {
	b.X = clampF(b.X, b.Radius, math.Max(b.Radius, canvasW-b.Radius))
	if b.Y < b.Radius {
		b.Y = b.Radius
	}
}
