package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"photobreak/internal/app"
	"photobreak/internal/game"
)

func newTestTerm(t *testing.T) *Term {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	tm := New(screen)
	a, err := app.New(app.Options{Seed: 5, Demo: true, NoAudio: true}, tm.Input, nil)
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	tm.App = a
	tm.layout()
	return tm
}

func rowText(s tcell.Screen, y int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := range cols {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// TestLayoutKeepsCanvasHeight checks the canvas follows the terminal aspect.
func TestLayoutKeepsCanvasHeight(t *testing.T) {
	tm := newTestTerm(t)
	s := tm.App.Session
	if s.CanvasH != game.CanvasHeight {
		t.Errorf("CanvasH = %v, want %v", s.CanvasH, game.CanvasHeight)
	}
	// 80 columns by 44 half-block rows.
	want := float64(game.CanvasHeight) * 80 / 44
	if s.CanvasW != want {
		t.Errorf("CanvasW = %v, want %v", s.CanvasW, want)
	}
}

// TestDrawShowsTitleAndHUD renders the title screen and a playing frame.
func TestDrawShowsTitleAndHUD(t *testing.T) {
	tm := newTestTerm(t)
	tm.Draw()
	found := false
	for y := range 24 {
		if strings.Contains(rowText(tm.Screen, y), "Ready! Time to smash") {
			found = true
		}
	}
	if !found {
		t.Error("title not drawn")
	}

	tm.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if tm.App.Session.State != game.StatePlaying {
		t.Fatalf("state = %v, want playing", tm.App.Session.State)
	}
	tm.App.Tick(0)
	tm.Draw()
	if got := rowText(tm.Screen, 0); !strings.Contains(got, "SCORE 0000") {
		t.Errorf("HUD row = %q", got)
	}
	if r, _, _, _ := tm.Screen.GetContent(10, 5); r != halfBlock {
		t.Errorf("playfield cell = %q, want half block", r)
	}
}

// TestKeyHoldExpires checks arrow keys steer only while repeating.
func TestKeyHoldExpires(t *testing.T) {
	tm := newTestTerm(t)
	clock := time.Unix(100, 0)
	tm.now = func() time.Time { return clock }

	tm.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if in := tm.Input(); in.Dir != -1 {
		t.Errorf("Dir = %d, want -1", in.Dir)
	}
	clock = clock.Add(keyHold + time.Millisecond)
	if in := tm.Input(); in.Dir != 0 {
		t.Errorf("Dir after hold = %d, want 0", in.Dir)
	}
}

// TestMouseTargetsCanvas maps a mouse column to canvas space.
func TestMouseTargetsCanvas(t *testing.T) {
	tm := newTestTerm(t)
	tm.Draw()
	tm.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	in := tm.Input()
	if !in.HasTarget {
		t.Fatal("mouse target not set")
	}
	want := 40.5 * tm.App.Session.CanvasW / 80
	if d := in.TargetX - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("TargetX = %v, want %v", in.TargetX, want)
	}
}

// TestQuitKeys covers the quit bindings.
func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		tm := newTestTerm(t)
		if tm.HandleEvent(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
}
