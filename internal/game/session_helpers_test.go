package game

import (
	"image"
	"testing"
)

// recorder captures everything the session emits.
type recorder struct {
	cues   []Cue
	huds   []HUD
	pans   []float64
	states []State
}

func (r *recorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newRecordingBus() (*EventBus, *recorder) {
	bus := NewEventBus()
	rec := &recorder{}
	bus.Subscribe(EventCue, func(e Event) {
		rec.cues = append(rec.cues, e.Cue)
		rec.pans = append(rec.pans, e.Pan)
	})
	bus.Subscribe(EventHUD, func(e Event) { rec.huds = append(rec.huds, e.HUD) })
	bus.Subscribe(EventStateChanged, func(e Event) { rec.states = append(rec.states, e.State) })
	return bus, rec
}

// bareConfig is the default tuning with a single bomb-free stage.
func bareConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Stages = []StageConfig{{PaddleWidth: 120, Bombs: 0}}
	return cfg
}

func startedSession(t *testing.T, cfg Config) (*Session, *recorder) {
	t.Helper()
	bus, rec := newRecordingBus()
	s := NewSession(cfg, bus)
	s.AttachPhoto(testPhoto())
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec.cues = nil
	rec.pans = nil
	rec.huds = nil
	return s, rec
}

func (s *Session) placeBall(x, y, dx, dy float64) {
	s.Ball.X, s.Ball.Y, s.Ball.DX, s.Ball.DY = x, y, dx, dy
}

func testPhoto() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 40, 64))
}
