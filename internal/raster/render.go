package raster

import (
	"fmt"
	"image"
	"strings"

	"photobreak/internal/game"
	"photobreak/internal/photo"
)

// Renderer draws sessions into a Frame. The session canvas is scaled to fit
// the frame, so a coarse frame (a terminal) can show a full-size game.
type Renderer struct {
	Frame *Frame
	// HUD enables in-frame text. Front-ends that draw text natively leave
	// it off.
	HUD bool

	photo  image.Image
	thumb  *image.RGBA
	thumbW int
	thumbH int

	glow, norm []float32
	sx, sy     float64
	ox, oy     float64
}

func NewRenderer(f *Frame) *Renderer {
	return &Renderer{Frame: f}
}

// ToCanvas maps a frame x back to canvas space, for pointer input.
func (r *Renderer) ToCanvas(fx float64) float64 {
	if r.sx == 0 {
		return fx
	}
	return fx / r.sx
}

func (r *Renderer) rect(rc game.RectF) game.RectF {
	return game.RectF{
		X0: rc.X0*r.sx + r.ox, Y0: rc.Y0*r.sy + r.oy,
		X1: rc.X1*r.sx + r.ox, Y1: rc.Y1*r.sy + r.oy,
	}
}

// thumbnail keeps a copy of the photo sized to the grid band in frame pixels.
func (r *Renderer) thumbnail(s *game.Session) *image.RGBA {
	if s.Photo == nil {
		r.photo, r.thumb = nil, nil
		return nil
	}
	g := s.Grid
	w := int(float64(g.Cols)*(g.BrickWidth(s.CanvasW)+g.Geometry.Padding)*r.sx) + 1
	h := int((g.Bottom()-g.Geometry.OffsetTop)*r.sy) + 1
	if s.Photo != r.photo || w != r.thumbW || h != r.thumbH {
		r.photo, r.thumbW, r.thumbH = s.Photo, w, h
		r.thumb = photo.Thumbnail(s.Photo, w, h)
	}
	return r.thumb
}

// Draw renders one frame of s.
func (r *Renderer) Draw(s *game.Session) {
	f := r.Frame
	r.sx = float64(f.W()) / s.CanvasW
	r.sy = float64(f.H()) / s.CanvasH
	r.ox = s.Shake.X * r.sx
	r.oy = s.Shake.Y * r.sy

	f.Clear(game.Palette.Background)
	if s.State != game.StateNotStarted {
		r.drawBricks(s)
		r.drawEffects(s)
		r.drawBall(s)
		r.drawPaddle(s)
	}
	if r.HUD {
		r.drawHUD(s)
		if s.State != game.StatePlaying {
			r.drawOverlay(s)
		}
	}
}

func (r *Renderer) drawBricks(s *game.Session) {
	f := r.Frame
	thumb := r.thumbnail(s)
	for b := range s.Grid.Alive() {
		dst := r.rect(b.Rect)
		switch {
		case thumb != nil:
			f.BlitRegion(thumb, b.Crop, dst)
		case b.Bomb:
			f.FillRect(dst.X0, dst.Y0, dst.X1, dst.Y1, game.Palette.Bomb, 1, false)
		default:
			f.FillRect(dst.X0, dst.Y0, dst.X1, dst.Y1, game.Palette.Brick, 1, false)
			if dst.H() >= 3 {
				f.FillRect(dst.X0, dst.Y1-1, dst.X1, dst.Y1, game.Palette.BrickEdge, 1, false)
			}
		}
		if b.Bomb {
			// Photo bombs get a red tint plus a hot core so they stay visible.
			if thumb != nil {
				f.FillRect(dst.X0, dst.Y0, dst.X1, dst.Y1, game.Palette.Bomb, 0.45, false)
			}
			cx, cy := dst.Center()
			f.FillCircle(cx, cy, max(dst.H()*0.3, 0.5), game.Palette.BombCore, 0.9, false)
		}
		if dst.W() >= 4 && dst.H() >= 4 {
			f.StrokeRect(dst.X0, dst.Y0, dst.X1, dst.Y1, game.RGB{R: 255, G: 255, B: 255}, 0.3)
		}
	}
}

func (r *Renderer) drawEffects(s *game.Session) {
	f := r.Frame
	for _, fl := range s.Effects.Flashes {
		d := r.rect(fl.Rect)
		f.FillRect(d.X0, d.Y0, d.X1, d.Y1, game.Palette.Flash, fl.Alpha, false)
	}
	r.glow, r.norm = s.Effects.ParticleRenderData(r.glow, r.norm)
	r.drawSprites(r.norm, false)
	r.drawSprites(r.glow, true)
}

// drawSprites consumes [x, y, size, r, g, b, a, rot] records.
func (r *Renderer) drawSprites(buf []float32, additive bool) {
	f := r.Frame
	for i := 0; i+7 < len(buf); i += 8 {
		a := float64(buf[i+6])
		size := float64(buf[i+2])
		if a <= 0 || size <= 0 {
			continue
		}
		x := float64(buf[i+0])*r.sx + r.ox
		y := float64(buf[i+1])*r.sy + r.oy
		c := game.RGB{R: clampByte(float64(buf[i+3]) * 255), G: clampByte(float64(buf[i+4]) * 255), B: clampByte(float64(buf[i+5]) * 255)}
		if additive {
			// Glow colours arrive premultiplied.
			f.FillCircle(x, y, size*0.5*r.sx, c, 1, true)
		} else {
			f.FillSquare(x, y, size*r.sx, c, a, false)
		}
	}
}

func (r *Renderer) drawBall(s *game.Session) {
	b := s.Ball
	x := b.X*r.sx + r.ox
	y := b.Y*r.sy + r.oy
	rad := b.Radius * r.sx
	r.Frame.FillCircle(x, y, rad*1.8, game.Palette.BallGlow, 0.18, true)
	r.Frame.FillCircle(x, y, rad, game.Palette.BallGlow, 1, false)
	r.Frame.FillCircle(x, y, rad*0.5, game.Palette.Ball, 0.8, false)
}

func (r *Renderer) drawPaddle(s *game.Session) {
	d := r.rect(s.Paddle.Rect(s.CanvasH))
	r.Frame.FillRect(d.X0, d.Y0, d.X1, d.Y1, game.Palette.Paddle, 1, false)
	if d.H() >= 3 {
		r.Frame.FillRect(d.X0, d.Y0, d.X1, d.Y0+1, game.Palette.PaddleEdge, 1, false)
	}
}

// HUDLine is the status text shown above the bricks.
func HUDLine(h game.HUD) string {
	lives := strings.Repeat("o", h.Lives) + strings.Repeat(".", max(h.MaxLives-h.Lives, 0))
	return fmt.Sprintf("SCORE %04d   STAGE %d/%d   %s", h.Score, h.Stage, h.MaxStage, lives)
}

func (r *Renderer) drawHUD(s *game.Session) {
	r.Frame.TextShadow(6, 6, HUDLine(s.HUD()), game.HUDColor(s.HUD()))
}

func (r *Renderer) drawOverlay(s *game.Session) {
	f := r.Frame
	w, h := f.W(), f.H()
	f.FillRect(0, 0, float64(w), float64(h), game.RGB{}, 0.55, false)
	y := h/2 - 2*GlyphH
	f.TextCentered(w/2, y, s.Title(), game.Palette.Accent)
	y += GlyphH + 6
	if s.Banner != "" {
		f.TextCentered(w/2, y, s.Banner, game.Palette.Text)
		y += GlyphH + 6
	}
	for _, a := range s.Actions() {
		f.TextCentered(w/2, y, a, game.Palette.TextDim)
		y += GlyphH + 2
	}
}
