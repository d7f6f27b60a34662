//go:build !android

package desktop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"photobreak/internal/game"
)

// Font atlas layout: printable ASCII in a 16 column grid of fixed cells.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontFirst  = 32
	FontLast   = 126
	FontRows   = (FontLast - FontFirst + FontCols) / FontCols
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// buildFontAtlas rasterizes the built-in face; coverage lands in alpha.
func buildFontAtlas() *image.RGBA {
	atlas := image.NewRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{Dst: atlas, Src: image.NewUniform(color.White), Face: basicfont.Face7x13}
	for ch := FontFirst; ch <= FontLast; ch++ {
		i := ch - FontFirst
		x := (i % FontCols) * FontCellW
		y := (i / FontCols) * FontCellH
		d.Dot = fixed.P(x, y+basicfont.Face7x13.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return atlas
}

// InitFont uploads the glyph atlas and sets up the text pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()

	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.BindVertexArray(0)
	return nil
}

// glyphUV returns the atlas rect of ch; ok is false for unprintable runes.
func glyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FontFirst || ch > FontLast {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - FontFirst
	col, row := i%FontCols, i/FontCols
	u0 = float32(col*FontCellW) / FontAtlasW
	v0 = float32(row*FontCellH) / FontAtlasH
	u1 = float32((col+1)*FontCellW) / FontAtlasW
	v1 = float32((row+1)*FontCellH) / FontAtlasH
	return u0, v0, u1, v1, true
}

// DrawString queues text at canvas position (x, y), top-left aligned.
func (r *Renderer) DrawString(text string, x, y, scale float32, col game.RGB, alpha float32) {
	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	for _, ch := range text {
		u0, v0, u1, v1, ok := glyphUV(ch)
		if ok {
			// Two triangles: TL, TR, BL then TR, BR, BL.
			r.textBuf = append(r.textBuf,
				x, y, u0, v0, cr, cg, cb, alpha,
				x+w, y, u1, v0, cr, cg, cb, alpha,
				x, y+h, u0, v1, cr, cg, cb, alpha,
				x+w, y, u1, v0, cr, cg, cb, alpha,
				x+w, y+h, u1, v1, cr, cg, cb, alpha,
				x, y+h, u0, v1, cr, cg, cb, alpha,
			)
		}
		x += w
	}
}

// DrawCentered queues text horizontally centred on cx.
func (r *Renderer) DrawCentered(text string, cx, y, scale float32, col game.RGB) {
	r.DrawString(text, cx-TextWidth(text, scale)/2, y, scale, col, 1)
}

// TextWidth returns the canvas width of a single-line string.
func TextWidth(text string, scale float32) float32 {
	return float32(len([]rune(text))*FontCellW) * scale
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(r.canvasW), float32(r.canvasH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
