package game

import (
	"math"
	"testing"
)

// TestCornerHit replays a down-right hit on the top-left brick of a 10x16 grid.
func TestCornerHit(t *testing.T) {
	s, rec := startedSession(t, bareConfig())
	s.placeBall(12, 60, 1, 5)

	s.Step(1, Input{})

	if s.Grid.At(0, 0).Alive {
		t.Fatalf("brick (0,0) still alive")
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	// Current box overlaps: x min 8, y min -4, so the Y axis flips.
	if s.Ball.DY >= 0 || s.Ball.DX <= 0 {
		t.Errorf("velocity = (%v,%v), want DY flipped only", s.Ball.DX, s.Ball.DY)
	}
	want := TargetSpeed(BaseSpeed, SpeedRange, 10, 1600)
	if !near(s.Ball.Speed(), want, 1e-9) {
		t.Errorf("speed = %v, want %v", s.Ball.Speed(), want)
	}
	if rec.count(CueShatter) != 1 {
		t.Errorf("shatter cues = %d, want 1", rec.count(CueShatter))
	}
	// Brick (0,0) sits on the left edge of the canvas.
	if len(rec.pans) == 0 || rec.pans[0] >= -0.8 {
		t.Errorf("shatter pan = %v, want hard left", rec.pans)
	}
	if len(rec.huds) == 0 || rec.huds[len(rec.huds)-1].Score != 10 {
		t.Errorf("HUD not updated: %+v", rec.huds)
	}
	if len(s.Effects.P) != ParticlesPerBrick || len(s.Effects.Flashes) != 1 {
		t.Errorf("effects = %d particles, %d flashes", len(s.Effects.P), len(s.Effects.Flashes))
	}
}

// TestSideHitFlipsX verifies a ball entering from the side reflects horizontally.
func TestSideHitFlipsX(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	// Clear column 1 so the ball can approach brick (0,5) from its right side.
	for r := range 16 {
		s.Grid.MarkDestroyed(1, r)
	}
	b := s.Grid.At(0, 5)
	y := (b.Rect.Y0 + b.Rect.Y1) / 2
	s.placeBall(b.Rect.X1+s.Ball.Radius+1, y, -3, 0.5)

	s.Step(1, Input{})

	if b.Alive {
		t.Fatalf("brick (0,5) still alive")
	}
	if s.Ball.DX <= 0 {
		t.Errorf("DX = %v, want positive after side hit", s.Ball.DX)
	}
	if s.Ball.DY <= 0 {
		t.Errorf("DY = %v, want sign kept", s.Ball.DY)
	}
}

// TestOneBrickPerFrame verifies only the first brick in scan order is taken.
func TestOneBrickPerFrame(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	// Ball straddling the gap between columns 0 and 1 on row 15.
	b0 := s.Grid.At(0, 15)
	x := b0.Rect.X1 + BrickPadding/2
	s.placeBall(x, b0.Rect.Y1+s.Ball.Radius+1, 0, -5)

	s.Step(1, Input{})

	if s.Grid.Destroyed() != 1 {
		t.Fatalf("destroyed = %d, want 1", s.Grid.Destroyed())
	}
	if b0.Alive {
		t.Errorf("first brick in scan order should be the one hit")
	}
	if !s.Grid.At(1, 15).Alive {
		t.Errorf("second brick destroyed in the same frame")
	}
}

// TestPaddleEdgeBounce hits the far right of a 120-wide paddle.
func TestPaddleEdgeBounce(t *testing.T) {
	s, rec := startedSession(t, bareConfig())
	if s.Paddle.Width != 120 {
		t.Fatalf("paddle width = %v, want 120", s.Paddle.Width)
	}
	s.Paddle.X = 100
	top := s.Paddle.Top(s.CanvasH)
	s.placeBall(219.9, top-3, 0, 6)

	s.Step(1, Input{})

	if s.State != StatePlaying {
		t.Fatalf("state = %v, want playing", s.State)
	}
	if s.Ball.DX <= 0 || s.Ball.DY >= 0 {
		t.Fatalf("velocity = (%v,%v), want up and right", s.Ball.DX, s.Ball.DY)
	}
	angle := math.Atan2(s.Ball.DX, -s.Ball.DY) * 180 / math.Pi
	if angle < 59 || angle > 60 {
		t.Errorf("angle = %v degrees, want close to 60", angle)
	}
	if !near(s.Ball.Speed(), 6, 1e-9) {
		t.Errorf("speed = %v, want 6", s.Ball.Speed())
	}
	if rec.count(CueWallBounce) != 1 {
		t.Errorf("bounce cues = %d, want 1", rec.count(CueWallBounce))
	}
	if s.Ball.Y >= top {
		t.Errorf("ball Y = %v, want above paddle top %v", s.Ball.Y, top)
	}
}

// TestPaddleMinimumLift verifies a slow edge hit still leaves with |DY| >= 2.
func TestPaddleMinimumLift(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	s.Paddle.X = 100
	top := s.Paddle.Top(s.CanvasH)
	s.placeBall(219.9, top-1, 0, 3)

	s.Step(1, Input{})

	if s.Ball.DY != -MinBounceDY {
		t.Errorf("DY = %v, want %v", s.Ball.DY, -MinBounceDY)
	}
}

// TestWallBounces checks both side walls and the ceiling.
func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
	}{
		{"Right", CanvasWidth - 7, 500, 4, -1, -4, -1},
		{"Left", 7, 500, -4, -1, 4, -1},
		{"Ceiling", 240, 8, 1, -4, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := startedSession(t, bareConfig())
			s.placeBall(tt.x, tt.y, tt.dx, tt.dy)

			s.Step(1, Input{})

			if s.Ball.DX != tt.wantDX || s.Ball.DY != tt.wantDY {
				t.Errorf("velocity = (%v,%v), want (%v,%v)", s.Ball.DX, s.Ball.DY, tt.wantDX, tt.wantDY)
			}
			if rec.count(CueWallBounce) != 1 {
				t.Errorf("bounce cues = %d, want 1", rec.count(CueWallBounce))
			}
		})
	}
}

// TestLastLifeExhausts verifies losing with one life left ends the run.
func TestLastLifeExhausts(t *testing.T) {
	cfg := bareConfig()
	cfg.Lives = 1
	s, rec := startedSession(t, cfg)
	s.placeBall(50, CanvasHeight-5, 0, 6)

	s.Step(1, Input{})

	if s.State != StateLivesExhausted {
		t.Fatalf("state = %v, want lives-exhausted", s.State)
	}
	if s.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Lives)
	}
	if rec.count(CueLoseLife) != 1 {
		t.Errorf("lose cues = %d, want 1", rec.count(CueLoseLife))
	}
	if s.Banner == "" {
		t.Errorf("no banner for game over")
	}
}

// TestBallLostKeepsBricks verifies a lost ball with lives left only pauses the stage.
func TestBallLostKeepsBricks(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	s.Grid.MarkDestroyed(4, 4)
	s.placeBall(50, CanvasHeight-5, 0, 6)

	s.Step(1, Input{})

	if s.State != StateBallLost || s.Lives != 2 {
		t.Fatalf("state = %v lives = %d, want ball-lost with 2", s.State, s.Lives)
	}
	if err := s.Retry(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Grid.At(4, 4).Alive || s.Grid.Destroyed() != 1 {
		t.Errorf("bricks changed by retry")
	}
	if s.Ball.DY >= 0 || !near(s.Ball.Speed(), BaseSpeed, 1e-9) {
		t.Errorf("ball not relaunched: (%v,%v)", s.Ball.DX, s.Ball.DY)
	}
}

// TestClampingInvariant runs a long randomized game and checks the ball bounds every frame.
func TestClampingInvariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	s, _ := startedSession(t, cfg)
	r := NewRand(5)

	for i := range 20000 {
		in := Input{Dir: r.Intn(3) - 1}
		if i%3 == 0 {
			in = Input{TargetX: s.Ball.X + r.RangeF(-40, 40), HasTarget: true}
		}
		dt := r.RangeF(0.2, MaxFrameScale)
		s.Step(dt, in)

		rad := s.Ball.Radius
		if s.Ball.X < rad || s.Ball.X > s.CanvasW-rad || s.Ball.Y < rad {
			t.Fatalf("frame %d: ball (%v,%v) out of bounds", i, s.Ball.X, s.Ball.Y)
		}
		if s.Paddle.X < 0 || s.Paddle.X > s.CanvasW-s.Paddle.Width {
			t.Fatalf("frame %d: paddle X %v out of bounds", i, s.Paddle.X)
		}
		if s.State != StatePlaying {
			if err := s.Continue(); err != nil {
				t.Fatalf("frame %d: continue from %v: %v", i, s.State, err)
			}
		}
	}
}
