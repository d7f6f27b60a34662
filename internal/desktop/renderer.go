//go:build !android

package desktop

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"photobreak/internal/game"
	"photobreak/internal/photo"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type quadUniforms struct {
	rect, uv, offset, resolution int32
	tex, useTex, color, tint     int32
	edge                         int32
}

type spriteUniforms struct {
	offset, resolution, pixelScale int32
}

// Renderer draws a session in canvas coordinates. The viewport is the
// framebuffer; uResolution is the canvas, so HiDPI scaling is implicit.
type Renderer struct {
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	qu       quadUniforms

	spriteProg uint32
	glowProg   uint32
	ballProg   uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spU        spriteUniforms
	glowU      spriteUniforms
	ballU      spriteUniforms

	// Photo texture, re-uploaded when the session's image changes.
	photoTex uint32
	photoImg image.Image

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	canvasW, canvasH float64
	pixelScale       float64
	offX, offY       float32

	glowBuf, normBuf []float32
}

func spriteLocations(prog uint32) spriteUniforms {
	return spriteUniforms{
		offset:     gl.GetUniformLocation(prog, gl.Str("uOffset\x00")),
		resolution: gl.GetUniformLocation(prog, gl.Str("uResolution\x00")),
		pixelScale: gl.GetUniformLocation(prog, gl.Str("uPixelScale\x00")),
	}
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{quadProg: quadProg}
	if r.spriteProg, err = linkProgram(particleVertSrc, particleFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	if r.glowProg, err = linkProgram(particleVertSrc, glowFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("glow program: %w", err)
	}
	if r.ballProg, err = linkProgram(particleVertSrc, ballFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("ball program: %w", err)
	}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(quadProg)
	r.qu = quadUniforms{
		rect:       gl.GetUniformLocation(quadProg, gl.Str("uRect\x00")),
		uv:         gl.GetUniformLocation(quadProg, gl.Str("uUV\x00")),
		offset:     gl.GetUniformLocation(quadProg, gl.Str("uOffset\x00")),
		resolution: gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00")),
		tex:        gl.GetUniformLocation(quadProg, gl.Str("uTex\x00")),
		useTex:     gl.GetUniformLocation(quadProg, gl.Str("uUseTex\x00")),
		color:      gl.GetUniformLocation(quadProg, gl.Str("uColor\x00")),
		tint:       gl.GetUniformLocation(quadProg, gl.Str("uTint\x00")),
		edge:       gl.GetUniformLocation(quadProg, gl.Str("uEdge\x00")),
	}
	gl.Uniform1i(r.qu.tex, 0)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, game.MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	r.spU = spriteLocations(r.spriteProg)
	r.glowU = spriteLocations(r.glowProg)
	r.ballU = spriteLocations(r.ballProg)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.spriteProg, r.glowProg, r.ballProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.photoTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// BeginFrame clears and records the canvas mapping for this frame.
func (r *Renderer) BeginFrame(fbW, fbH int, canvasW, canvasH float64, shake game.Shake) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := game.Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.canvasW, r.canvasH = canvasW, canvasH
	r.pixelScale = float64(fbW) / canvasW
	r.offX, r.offY = float32(shake.X), float32(shake.Y)
}

// syncPhoto uploads img as the brick texture when it changes.
func (r *Renderer) syncPhoto(img image.Image) {
	if img == r.photoImg {
		return
	}
	r.photoImg = img
	if r.photoTex != 0 {
		gl.DeleteTextures(1, &r.photoTex)
		r.photoTex = 0
	}
	if img == nil {
		return
	}
	rgba := photo.RGBA(img)
	b := rgba.Bounds()
	gl.GenTextures(1, &r.photoTex)
	gl.BindTexture(gl.TEXTURE_2D, r.photoTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
}

// Quad describes one rectangle draw.
type Quad struct {
	Rect     game.RectF
	Crop     game.RectF // used when Textured
	Textured bool
	Color    game.RGB
	Alpha    float64
	Tint     game.RGB
	TintA    float64
	Outline  bool
	Additive bool
	Shaken   bool
}

func (r *Renderer) DrawQuad(q Quad) {
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform2f(r.qu.resolution, float32(r.canvasW), float32(r.canvasH))
	if q.Shaken {
		gl.Uniform2f(r.qu.offset, r.offX, r.offY)
	} else {
		gl.Uniform2f(r.qu.offset, 0, 0)
	}
	gl.Uniform4f(r.qu.rect, float32(q.Rect.X0), float32(q.Rect.Y0), float32(q.Rect.X1), float32(q.Rect.Y1))
	gl.Uniform4f(r.qu.uv, float32(q.Crop.X0), float32(q.Crop.Y0), float32(q.Crop.X1), float32(q.Crop.Y1))
	useTex := int32(0)
	if q.Textured && r.photoTex != 0 {
		useTex = 1
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.photoTex)
	}
	gl.Uniform1i(r.qu.useTex, useTex)
	c := q.Color
	gl.Uniform4f(r.qu.color, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(q.Alpha))
	t := q.Tint
	gl.Uniform4f(r.qu.tint, float32(t.R)/255, float32(t.G)/255, float32(t.B)/255, float32(q.TintA))
	if q.Outline && q.Rect.W() > 0 && q.Rect.H() > 0 {
		gl.Uniform2f(r.qu.edge, float32(1/q.Rect.W()), float32(1/q.Rect.H()))
	} else {
		gl.Uniform2f(r.qu.edge, 0, 0)
	}

	gl.Enable(gl.BLEND)
	if q.Additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// DrawSprites renders point sprites.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, additive bool) {
	if additive {
		r.drawPoints(r.glowProg, r.glowU, buf, gl.ONE, gl.ONE)
		return
	}
	r.drawPoints(r.spriteProg, r.spU, buf, gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (r *Renderer) drawPoints(prog uint32, u spriteUniforms, buf []float32, src, dst uint32) {
	if len(buf) == 0 {
		return
	}
	count := min(len(buf)/8, game.MaxParticleRender)

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(u.offset, r.offX, r.offY)
	gl.Uniform2f(u.resolution, float32(r.canvasW), float32(r.canvasH))
	gl.Uniform1f(u.pixelScale, float32(r.pixelScale))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(src, dst)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawBall draws the ball as a round sprite with an additive halo.
func (r *Renderer) DrawBall(b game.Ball) {
	g := game.Palette.BallGlow
	gr, gg, gb := float32(g.R)/255, float32(g.G)/255, float32(g.B)/255
	halo := []float32{float32(b.X), float32(b.Y), float32(b.Radius * 4), gr * 0.5, gg * 0.5, gb * 0.5, 1, 0}
	r.drawPoints(r.glowProg, r.glowU, halo, gl.ONE, gl.ONE)
	core := []float32{float32(b.X), float32(b.Y), float32(b.Radius * 2), gr, gg, gb, 1, 0}
	r.drawPoints(r.ballProg, r.ballU, core, gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}
