package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestFrameScale covers the nominal, stalled, first and backwards frames.
func TestFrameScale(t *testing.T) {
	tests := []struct {
		name      string
		now, last float64
		want      float64
	}{
		{"Nominal", 1000 + TargetInterval, 1000, 1},
		{"Half", 1000 + TargetInterval/2, 1000, 0.5},
		{"Stalled", 9000, 1000, MaxFrameScale},
		{"Sentinel", 123456, -1, 1},
		{"Backwards", 900, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameScale(tt.now, tt.last, TargetInterval)
			if !near(got, tt.want, eps) {
				t.Errorf("FrameScale(%v, %v) = %v, want %v", tt.now, tt.last, got, tt.want)
			}
		})
	}
}

// TestTentativeDoesNotMutate verifies the tentative position leaves the ball untouched.
func TestTentativeDoesNotMutate(t *testing.T) {
	b := Ball{X: 10, Y: 20, DX: 3, DY: -4, Radius: 6}
	x, y := b.Tentative(2)
	if x != 16 || y != 12 {
		t.Errorf("tentative = (%v,%v), want (16,12)", x, y)
	}
	if b.X != 10 || b.Y != 20 {
		t.Errorf("ball moved to (%v,%v)", b.X, b.Y)
	}
	b.Commit(2)
	if b.X != 16 || b.Y != 12 {
		t.Errorf("commit = (%v,%v), want (16,12)", b.X, b.Y)
	}
}

// TestRescaleTo checks direction is kept and zero speed is skipped.
func TestRescaleTo(t *testing.T) {
	b := Ball{DX: 3, DY: -4}
	if !b.RescaleTo(10) {
		t.Fatalf("rescale skipped")
	}
	if !near(b.DX, 6, eps) || !near(b.DY, -8, eps) {
		t.Errorf("velocity = (%v,%v), want (6,-8)", b.DX, b.DY)
	}

	still := Ball{}
	if still.RescaleTo(10) {
		t.Errorf("zero-speed rescale should be skipped")
	}
	if still.DX != 0 || still.DY != 0 || math.IsNaN(still.DX) {
		t.Errorf("zero-speed ball changed: (%v,%v)", still.DX, still.DY)
	}
}

// TestTargetSpeed checks the speed ramp bounds.
func TestTargetSpeed(t *testing.T) {
	if got := TargetSpeed(6, 2, 0, 1600); got != 6 {
		t.Errorf("empty stage speed = %v, want 6", got)
	}
	if got := TargetSpeed(6, 2, 800, 1600); got != 7 {
		t.Errorf("half stage speed = %v, want 7", got)
	}
	if got := TargetSpeed(6, 2, 1600, 1600); got != 8 {
		t.Errorf("full stage speed = %v, want 8", got)
	}
	if got := TargetSpeed(6, 2, 10, 0); got != 6 {
		t.Errorf("zero total speed = %v, want 6", got)
	}
}

// TestLaunch verifies the velocity is built from angle and speed, always upward.
func TestLaunch(t *testing.T) {
	var b Ball
	b.Launch(100, 200, 6, math.Pi/6)
	if !near(b.Speed(), 6, 1e-9) {
		t.Errorf("speed = %v, want 6", b.Speed())
	}
	if b.DX <= 0 || b.DY >= 0 {
		t.Errorf("velocity = (%v,%v), want right and up", b.DX, b.DY)
	}
	if b.X != 100 || b.Y != 200 {
		t.Errorf("position = (%v,%v)", b.X, b.Y)
	}
}

// TestPaddleClamp verifies the paddle stays within [0, canvasW-width].
func TestPaddleClamp(t *testing.T) {
	p := Paddle{Width: 120, Height: 12, Gap: 10}
	p.MoveTo(-500, 480)
	if p.X != 0 {
		t.Errorf("left clamp X = %v, want 0", p.X)
	}
	p.MoveTo(5000, 480)
	if p.X != 360 {
		t.Errorf("right clamp X = %v, want 360", p.X)
	}
	p.Nudge(-1, 7, 1, 480)
	if p.X != 353 {
		t.Errorf("nudge X = %v, want 353", p.X)
	}
	p.Clamp(200)
	if p.X != 80 {
		t.Errorf("shrunk canvas X = %v, want 80", p.X)
	}
	if top := p.Top(720); top != 698 {
		t.Errorf("top = %v, want 698", top)
	}
}

// TestPaddleAngle checks the curve at the centre, the edges and in between.
func TestPaddleAngle(t *testing.T) {
	edge := math.Pi / 3
	if got := PaddleAngle(0, 1.8, 60); got != 0 {
		t.Errorf("centre angle = %v, want 0", got)
	}
	if got := PaddleAngle(1, 1.8, 60); !near(got, edge, 1e-12) {
		t.Errorf("right edge angle = %v, want %v", got, edge)
	}
	if got := PaddleAngle(-1, 1.8, 60); !near(got, -edge, 1e-12) {
		t.Errorf("left edge angle = %v, want %v", got, -edge)
	}
	half := PaddleAngle(0.5, 1.8, 60)
	if !near(half, math.Pow(0.5, 1.8)*edge, 1e-12) || half >= edge/2 {
		t.Errorf("half angle = %v, want curved below linear", half)
	}
}
