package game

import (
	"errors"
	"image"
	"strings"
	"testing"
)

// TestStartNeedsPhoto verifies the title screen refuses to start without a photo.
func TestStartNeedsPhoto(t *testing.T) {
	s := NewSession(bareConfig(), nil)
	if err := s.Start(); !errors.Is(err, ErrNoPhoto) {
		t.Fatalf("start without photo: err = %v, want ErrNoPhoto", err)
	}
	if s.State != StateNotStarted {
		t.Errorf("state = %v, want not-started", s.State)
	}
	s.AttachPhoto(image.NewGray(image.Rect(0, 0, 8, 8)))
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State != StatePlaying || s.Stage != 1 || s.Lives != MaxLives {
		t.Errorf("after start: state=%v stage=%d lives=%d", s.State, s.Stage, s.Lives)
	}
}

// TestBadTransitions checks every action is refused outside its source state.
func TestBadTransitions(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	actions := map[string]func() error{
		"start":    s.Start,
		"retry":    s.Retry,
		"advance":  s.Advance,
		"restart":  s.Restart,
		"reselect": s.Reselect,
	}
	for name, fn := range actions {
		if err := fn(); !errors.Is(err, ErrBadTransition) {
			t.Errorf("%s while playing: err = %v, want ErrBadTransition", name, err)
		}
	}
	if s.State != StatePlaying {
		t.Errorf("state changed to %v", s.State)
	}
}

// clearStage destroys every brick but one and knocks the last one out with the ball.
func clearStage(t *testing.T, s *Session) {
	t.Helper()
	for b := range s.Grid.Alive() {
		if b.Col == 4 && b.Row == s.Grid.Rows-1 {
			continue
		}
		s.Grid.MarkDestroyed(b.Col, b.Row)
	}
	for b := range s.Grid.Alive() {
		b.Bomb = false
	}
	hitFromBelow(s, 4, s.Grid.Rows-1)
	s.Step(1, Input{})
}

// TestStageProgression walks all three stages and checks carried score and paddle widths.
func TestStageProgression(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	s, rec := startedSession(t, cfg)

	widths := []float64{120, 100, 80}
	bombs := []int{3, 5, 8}
	for stage := 1; stage <= 3; stage++ {
		if s.Stage != stage {
			t.Fatalf("stage = %d, want %d", s.Stage, stage)
		}
		if s.Paddle.Width != widths[stage-1] {
			t.Errorf("stage %d paddle = %v, want %v", stage, s.Paddle.Width, widths[stage-1])
		}
		if got := s.Grid.Bombs(); got != bombs[stage-1] {
			t.Errorf("stage %d bombs = %d, want %d", stage, got, bombs[stage-1])
		}
		if s.StageScore != 0 {
			t.Errorf("stage %d starts with stage score %d", stage, s.StageScore)
		}

		before := s.Score
		clearStage(t, s)
		if s.Score != before+10 {
			t.Errorf("stage %d score = %d, want %d", stage, s.Score, before+10)
		}

		if stage < 3 {
			if s.State != StateStageCleared {
				t.Fatalf("stage %d: state = %v, want stage-cleared", stage, s.State)
			}
			if err := s.Advance(); err != nil {
				t.Fatalf("advance: %v", err)
			}
			if s.Score != before+10 {
				t.Errorf("score not carried: %d", s.Score)
			}
			if s.Grid.Destroyed() != 0 {
				t.Errorf("new grid has %d destroyed", s.Grid.Destroyed())
			}
		}
	}
	if s.State != StateAllCleared {
		t.Fatalf("state = %v, want all-cleared", s.State)
	}
	if rec.count(CueStageClear) != 2 || rec.count(CueWin) != 1 {
		t.Errorf("cues: stage clear %d, win %d", rec.count(CueStageClear), rec.count(CueWin))
	}
}

// TestRestartResets verifies a full restart zeroes score and refills lives.
func TestRestartResets(t *testing.T) {
	cfg := bareConfig()
	cfg.Lives = 1
	s, _ := startedSession(t, cfg)
	s.Grid.MarkDestroyed(0, 0)
	s.Score = 250
	s.placeBall(50, CanvasHeight-5, 0, 6)
	s.Step(1, Input{})
	if s.State != StateLivesExhausted {
		t.Fatalf("state = %v", s.State)
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Score != 0 || s.Lives != 1 || s.Stage != 1 {
		t.Errorf("after restart: score=%d lives=%d stage=%d", s.Score, s.Lives, s.Stage)
	}
	if s.Grid.Destroyed() != 0 {
		t.Errorf("grid not rebuilt")
	}
}

// TestReselectDropsPhoto verifies picking another photo returns to the title screen.
func TestReselectDropsPhoto(t *testing.T) {
	cfg := bareConfig()
	cfg.Lives = 1
	s, rec := startedSession(t, cfg)
	s.placeBall(50, CanvasHeight-5, 0, 6)
	s.Step(1, Input{})

	if err := s.Reselect(); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if s.State != StateNotStarted || s.Photo != nil {
		t.Errorf("after reselect: state=%v photo=%v", s.State, s.Photo)
	}
	if err := s.Start(); !errors.Is(err, ErrNoPhoto) {
		t.Errorf("start after reselect: %v", err)
	}
	last := rec.states[len(rec.states)-1]
	if last != StateNotStarted {
		t.Errorf("last state event = %v", last)
	}
}

// TestEffectsAnimateWhenPaused verifies particles keep fading outside play.
func TestEffectsAnimateWhenPaused(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	s.Effects.SpawnShatter(s.Grid.At(0, 0))
	s.State = StateBallLost
	ballX, ballY := s.Ball.X, s.Ball.Y

	for range 200 {
		s.Step(1, Input{Dir: 1})
	}
	if s.Effects.Len() != 0 {
		t.Errorf("effects left after 200 frames: %d", s.Effects.Len())
	}
	if s.Ball.X != ballX || s.Ball.Y != ballY {
		t.Errorf("ball moved while paused")
	}
}

// TestResizeRelayout verifies a canvas change moves bricks and clamps the paddle.
func TestResizeRelayout(t *testing.T) {
	s, _ := startedSession(t, bareConfig())
	s.Paddle.X = 360
	s.Resize(300, 600)

	if s.Paddle.X != 180 {
		t.Errorf("paddle X = %v, want 180", s.Paddle.X)
	}
	if got := s.Grid.At(9, 0).Rect.X1; got != 288 {
		t.Errorf("last column right edge = %v, want 288", got)
	}
	s.Resize(0, 10)
	if s.CanvasW != 300 {
		t.Errorf("zero resize accepted")
	}
}

// TestBannerFormatting checks pool messages receive their number.
func TestBannerFormatting(t *testing.T) {
	r := NewRand(1)
	for range 10 {
		msg := pickBanner(r, retryBanners, 2)
		if msg == "" || !strings.ContainsRune(msg, '2') {
			t.Errorf("retry banner %q lacks lives count", msg)
		}
	}
	if pickBanner(r, nil, 0) != "" {
		t.Errorf("empty pool should give empty banner")
	}
}
