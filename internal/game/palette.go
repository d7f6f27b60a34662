package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// DebrisColors is the particle palette for brick debris.
var DebrisColors = [...]RGB{
	{R: 0xff, G: 0x3e, B: 0x81},
	{R: 0x00, G: 0xf2, B: 0xfe},
	{R: 0xff, G: 0xff, B: 0xff},
	{R: 0xff, G: 0xef, B: 0x60},
	{R: 0xff, G: 0x9f, B: 0x43},
}

var Palette = struct {
	Background RGB
	Brick      RGB
	BrickEdge  RGB
	Bomb       RGB
	BombCore   RGB
	Flash      RGB
	Ball       RGB
	BallGlow   RGB
	Paddle     RGB
	PaddleEdge RGB
	Text       RGB
	TextDim    RGB
	Accent     RGB
	Danger     RGB
}{
	Background: RGB{R: 14, G: 12, B: 28},
	Brick:      RGB{R: 72, G: 88, B: 140},
	BrickEdge:  RGB{R: 34, G: 40, B: 70},
	Bomb:       RGB{R: 220, G: 60, B: 50},
	BombCore:   RGB{R: 255, G: 200, B: 90},
	Flash:      RGB{R: 255, G: 255, B: 220},
	Ball:       RGB{R: 255, G: 255, B: 255},
	BallGlow:   RGB{R: 0, G: 242, B: 254},
	Paddle:     RGB{R: 255, G: 62, B: 129},
	PaddleEdge: RGB{R: 255, G: 159, B: 67},
	Text:       RGB{R: 240, G: 240, B: 250},
	TextDim:    RGB{R: 150, G: 150, B: 170},
	Accent:     RGB{R: 255, G: 239, B: 96},
	Danger:     RGB{R: 255, G: 80, B: 80},
}

// HUDColor is the status line colour: it turns to Danger on the last life.
func HUDColor(h HUD) RGB {
	if h.Lives == 1 && h.MaxLives > 1 {
		return Palette.Danger
	}
	return Palette.Text
}
