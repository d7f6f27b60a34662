package game

import "math"

// collideBricks tests the ball's tentative position against alive bricks.
// Only the first hit in scan order is resolved each frame.
func (s *Session) collideBricks(dt float64) bool {
	nx, ny := s.Ball.Tentative(dt)
	next := s.Ball.Bounds(nx, ny)
	for b := range s.Grid.Alive() {
		if !next.Intersects(b.Rect) {
			continue
		}
		s.award(b)
		cx, _ := b.Rect.Center()
		s.Events.PlayAt(CueShatter, s.pan(cx))
		s.reflectOff(b.Rect)
		if b.Bomb {
			s.detonate(b.Col, b.Row)
		}
		s.Ball.RescaleTo(TargetSpeed(s.Cfg.Ball.BaseSpeed, s.Cfg.Ball.SpeedRange,
			s.StageScore, s.Grid.Total()*PointsPerBrick))
		s.emitHUD()
		s.checkCleared()
		return true
	}
	return false
}

// reflectOff flips one velocity axis. Penetration is measured from the
// current position; X flips only when its overlap is strictly smaller.
func (s *Session) reflectOff(r RectF) {
	if reflectX(r, s.Ball.Bounds(s.Ball.X, s.Ball.Y)) {
		s.Ball.DX = -s.Ball.DX
	} else {
		s.Ball.DY = -s.Ball.DY
	}
}

func reflectX(brick, ball RectF) bool {
	left, right, top, bottom := brick.Overlaps(ball)
	return math.Min(left, right) < math.Min(top, bottom)
}

// collideWalls bounces the ball off the side walls.
func (s *Session) collideWalls(dt float64) {
	nx, _ := s.Ball.Tentative(dt)
	r := s.Ball.Radius
	switch {
	case nx > s.CanvasW-r:
		s.Ball.X = s.CanvasW - r
		s.Ball.DX = -math.Abs(s.Ball.DX)
		s.Events.PlayAt(CueWallBounce, 1)
	case nx < r:
		s.Ball.X = r
		s.Ball.DX = math.Abs(s.Ball.DX)
		s.Events.PlayAt(CueWallBounce, -1)
	}
}

// collideVertical handles the ceiling, the paddle and the floor. It reports
// true when the ball was lost.
func (s *Session) collideVertical(dt float64) bool {
	_, ny := s.Ball.Tentative(dt)
	r := s.Ball.Radius
	top := s.Paddle.Top(s.CanvasH)
	switch {
	case ny < r:
		s.Ball.Y = r
		s.Ball.DY = math.Abs(s.Ball.DY)
		s.Events.Play(CueWallBounce)
	case ny > top-r:
		x := s.Ball.X
		if x > s.Paddle.X && x < s.Paddle.X+s.Paddle.Width && ny >= top && s.Ball.Y <= top {
			s.bounceOffPaddle(top)
			return false
		}
		if ny > s.CanvasH {
			s.loseLife()
			return true
		}
	}
	return false
}

// PaddleAngle maps a hit position in [-1, 1] to a launch angle in radians
// from vertical. The power curve keeps the centre calm and the edges steep.
func PaddleAngle(hitPos, curve, maxDeg float64) float64 {
	return signedPow(clampF(hitPos, -1, 1), curve) * maxDeg * math.Pi / 180
}

func (s *Session) bounceOffPaddle(top float64) {
	s.Events.Play(CueWallBounce)
	angle := PaddleAngle(s.Paddle.HitPos(s.Ball.X), s.Cfg.Paddle.Curve, s.Cfg.Paddle.MaxAngle)
	s.Ball.Launch(s.Ball.X, top-s.Ball.Radius, s.Ball.Speed(), angle)
	if math.Abs(s.Ball.DY) < s.Cfg.Paddle.MinBounceDY {
		s.Ball.DY = -s.Cfg.Paddle.MinBounceDY
	}
}
