//go:build !android

package desktop

import (
	"photobreak/internal/game"
	"photobreak/internal/raster"
)

var white = game.RGB{R: 255, G: 255, B: 255}

// DrawSession renders the playfield, then the HUD and any overlay.
func (r *Renderer) DrawSession(s *game.Session) {
	r.syncPhoto(s.Photo)
	if s.State != game.StateNotStarted {
		r.drawBricks(s)
		for _, f := range s.Effects.Flashes {
			r.DrawQuad(Quad{Rect: f.Rect, Color: game.Palette.Flash, Alpha: f.Alpha, Additive: true, Shaken: true})
		}
		r.glowBuf, r.normBuf = s.Effects.ParticleRenderData(r.glowBuf, r.normBuf)
		r.DrawSprites(r.normBuf, false)
		r.DrawSprites(r.glowBuf, true)
		r.DrawBall(s.Ball)
		r.DrawQuad(Quad{Rect: s.Paddle.Rect(s.CanvasH), Color: game.Palette.Paddle, Alpha: 1, Outline: true, Shaken: true})
	}
	r.drawHUD(s)
	r.FlushText()
}

func (r *Renderer) drawBricks(s *game.Session) {
	textured := s.Photo != nil
	for b := range s.Grid.Alive() {
		q := Quad{
			Rect:     b.Rect,
			Crop:     b.Crop,
			Textured: textured,
			Color:    game.Palette.Brick,
			Alpha:    1,
			Outline:  true,
			Shaken:   true,
		}
		if b.Bomb {
			if textured {
				q.Tint, q.TintA = game.Palette.Bomb, 0.45
			} else {
				q.Color = game.Palette.Bomb
			}
		}
		r.DrawQuad(q)
		if b.Bomb {
			cx, cy := b.Rect.Center()
			rad := b.Rect.H() * 0.3
			core := game.RectF{X0: cx - rad, Y0: cy - rad, X1: cx + rad, Y1: cy + rad}
			r.DrawQuad(Quad{Rect: core, Color: game.Palette.BombCore, Alpha: 0.9, Shaken: true})
		}
	}
}

func (r *Renderer) drawHUD(s *game.Session) {
	cw := float32(r.canvasW)
	ch := float32(r.canvasH)
	if s.State != game.StateNotStarted {
		r.DrawString(raster.HUDLine(s.HUD()), 9, 9, 1.5, game.RGB{}, 0.8)
		r.DrawString(raster.HUDLine(s.HUD()), 8, 8, 1.5, game.HUDColor(s.HUD()), 1)
	}
	if s.State == game.StatePlaying {
		return
	}
	r.DrawQuad(Quad{Rect: game.RectF{X1: r.canvasW, Y1: r.canvasH}, Alpha: 0.55})
	y := ch/2 - 60
	r.DrawCentered(s.Title(), cw/2, y, 2.5, game.Palette.Accent)
	y += 50
	if s.Banner != "" {
		r.DrawCentered(s.Banner, cw/2, y, 1.2, white)
		y += 30
	}
	for _, a := range s.Actions() {
		r.DrawCentered(a, cw/2, y, 1.2, game.Palette.TextDim)
		y += 22
	}
	r.DrawCentered("M mute   ESC quit", cw/2, ch-24, 1, game.Palette.TextDim)
}
