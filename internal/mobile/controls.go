// Package mobile is the x/mobile front-end. The session is drawn by the
// software rasterizer and the frame is uploaded as one texture per paint.
package mobile

import (
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	pbapp "photobreak/internal/app"
	"photobreak/internal/game"
	"photobreak/internal/raster"
)

// controls maps screen events onto the session. The canvas is measured in
// points so the game keeps its proportions across screen densities.
type controls struct {
	app   *pbapp.App
	frame *raster.Frame
	rend  *raster.Renderer

	fbWidth, fbHeight int
	pxPerPt           float64

	touchDown   bool
	activeTouch touch.Sequence
	touchX      float64
}

func newControls() controls {
	f := raster.NewFrame(1, 1)
	r := raster.NewRenderer(f)
	r.HUD = true
	return controls{frame: f, rend: r, pxPerPt: 1}
}

func (g *controls) input() game.Input {
	if !g.touchDown {
		return game.Input{}
	}
	return game.Input{TargetX: g.touchX, HasTarget: true}
}

func (g *controls) resize(e size.Event) {
	g.fbWidth, g.fbHeight = e.WidthPx, e.HeightPx
	if e.PixelsPerPt > 0 {
		g.pxPerPt = float64(e.PixelsPerPt)
	}
	cw := float64(e.WidthPx) / g.pxPerPt
	ch := float64(e.HeightPx) / g.pxPerPt
	g.app.Session.Resize(cw, ch)
	g.frame.Resize(int(cw), int(ch))
}

// handleTouch follows one finger. A tap outside of play is the "go" action,
// and when it starts play the same finger goes on to steer.
func (g *controls) handleTouch(e touch.Event) {
	x := float64(e.X) / g.pxPerPt
	switch e.Type {
	case touch.TypeBegin:
		if g.app.Session.State != game.StatePlaying {
			g.app.Continue()
			if g.app.Session.State != game.StatePlaying {
				return
			}
		}
		if !g.touchDown {
			g.activeTouch = e.Sequence
			g.touchDown = true
		}
		if e.Sequence == g.activeTouch {
			g.touchX = x
		}
	case touch.TypeMove:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.touchX = x
		}
	case touch.TypeEnd:
		if g.touchDown && e.Sequence == g.activeTouch {
			g.touchDown = false
		}
	}
}
