// Package term is the terminal front-end: the raster frame is shown with
// half-block cells, two pixels per cell.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"photobreak/internal/app"
	"photobreak/internal/game"
	"photobreak/internal/raster"
)

// Terminals report key presses but not releases; a held key repeats, so a
// direction stays active this long after its last press.
const keyHold = 140 * time.Millisecond

const halfBlock = '▀'

// Term drives one screen. Row 0 is the HUD, the last row holds key hints.
type Term struct {
	Screen tcell.Screen
	App    *app.App

	frame *raster.Frame
	rend  *raster.Renderer

	dir       int
	dirUntil  time.Time
	mouseX    float64
	mouseSeen bool
	now       func() time.Time
	quit      bool
}

func New(screen tcell.Screen) *Term {
	f := raster.NewFrame(1, 1)
	return &Term{Screen: screen, frame: f, rend: raster.NewRenderer(f), now: time.Now}
}

// Input samples the paddle controls for the driver.
func (t *Term) Input() game.Input {
	in := game.Input{}
	if t.dir != 0 && t.now().Before(t.dirUntil) {
		in.Dir = t.dir
		return in
	}
	t.dir = 0
	if t.mouseSeen {
		in.TargetX, in.HasTarget = t.mouseX, true
	}
	return in
}

// layout sizes the frame to the screen and the canvas to the frame. Canvas
// height stays at the default so the brick band keeps its proportions; the
// width follows the terminal's aspect.
func (t *Term) layout() {
	cols, rows := t.Screen.Size()
	fw, fh := max(cols, 1), max((rows-2)*2, 2)
	t.frame.Resize(fw, fh)
	ch := float64(game.CanvasHeight)
	cw := max(ch*float64(fw)/float64(fh), 240)
	t.App.Session.Resize(cw, ch)
}

// HandleEvent applies one terminal event; it reports false on quit.
func (t *Term) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
		case tcell.KeyLeft:
			t.press(-1)
		case tcell.KeyRight:
			t.press(1)
		case tcell.KeyEnter:
			t.App.Continue()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				t.App.Continue()
			case 'a', 'A':
				t.press(-1)
			case 'd', 'D':
				t.press(1)
			case 'r', 'R':
				t.App.Reselect()
			case 'm', 'M':
				t.App.ToggleMute()
			case 'q', 'Q':
				t.quit = true
			}
		}
	case *tcell.EventMouse:
		x, _ := ev.Position()
		t.mouseX = t.rend.ToCanvas(float64(x) + 0.5)
		t.mouseSeen = true
		if ev.Buttons()&tcell.Button1 != 0 && t.App.Session.State != game.StatePlaying {
			t.App.Continue()
		}
	case *tcell.EventResize:
		t.Screen.Sync()
		t.layout()
	}
	return !t.quit
}

func (t *Term) press(dir int) {
	t.dir = dir
	t.dirUntil = t.now().Add(keyHold)
	t.mouseSeen = false
}

// Draw renders the session and pushes it to the screen.
func (t *Term) Draw() {
	s := t.App.Session
	t.rend.Draw(s)
	t.blit()
	t.drawText(s)
	t.Screen.Show()
}

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Term) blit() {
	f := t.frame
	for y := 0; y+1 < f.H(); y += 2 {
		for x := range f.W() {
			st := tcell.StyleDefault.Foreground(rgb(f.At(x, y))).Background(rgb(f.At(x, y+1)))
			t.Screen.SetContent(x, 1+y/2, halfBlock, nil, st)
		}
	}
}

func (t *Term) put(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		t.Screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (t *Term) centered(y int, s string, st tcell.Style) {
	cols, _ := t.Screen.Size()
	t.put((cols-len([]rune(s)))/2, y, s, st)
}

func (t *Term) drawText(s *game.Session) {
	cols, rows := t.Screen.Size()
	bar := tcell.StyleDefault.Background(rgb(game.Palette.Background))
	for x := range cols {
		t.Screen.SetContent(x, 0, ' ', nil, bar)
		t.Screen.SetContent(x, rows-1, ' ', nil, bar)
	}
	t.put(1, 0, raster.HUDLine(s.HUD()), bar.Foreground(rgb(game.HUDColor(s.HUD()))))
	t.put(1, rows-1, "←/→ A/D mouse  SPACE go  R photo  M mute  Q quit", bar.Foreground(rgb(game.Palette.TextDim)))
	if s.State == game.StatePlaying {
		return
	}
	y := rows/2 - 2
	box := tcell.StyleDefault.Background(tcell.ColorBlack)
	t.centered(y, " "+s.Title()+" ", box.Foreground(rgb(game.Palette.Accent)).Bold(true))
	y += 2
	if s.Banner != "" {
		t.centered(y, " "+s.Banner+" ", box.Foreground(rgb(game.Palette.Text)))
		y++
	}
	for _, a := range s.Actions() {
		t.centered(y, " "+a+" ", box.Foreground(rgb(game.Palette.TextDim)))
		y++
	}
}

// Run plays until the user quits. fps sets the tick rate; the simulation
// itself is frame-rate independent.
func (t *Term) Run(fps float64) {
	t.Screen.EnableMouse()
	t.Screen.HideCursor()
	t.layout()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.Screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / max(fps, 1)))
	defer ticker.Stop()
	start := t.now()
	t.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.App.Tick(float64(t.now().Sub(start).Microseconds()) / 1000)
			t.Draw()
		}
	}
}
