//go:build android

package mobile

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"fortio.org/log"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	pbapp "photobreak/internal/app"
)

type mobileGame struct {
	controls

	glReady bool
	prog    gl.Program
	tex     gl.Texture
	vbo     gl.Buffer
	aPos    gl.Attrib
	aUV     gl.Attrib
	uTex    gl.Uniform
	texW    int
	texH    int
}

func newMobileGame() *mobileGame {
	return &mobileGame{controls: newControls()}
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		msg := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", msg)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		msg := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", msg)
	}
	return prog, nil
}

const blitVertSrc = `
attribute vec2 aPos;
attribute vec2 aUV;
varying vec2 vUV;
void main() {
  vUV = aUV;
  gl_Position = vec4(aPos, 0.0, 1.0);
}`

const blitFragSrc = `
precision mediump float;
varying vec2 vUV;
uniform sampler2D uTex;
void main() {
  gl_FragColor = texture2D(uTex, vUV);
}`

func (g *mobileGame) initGL(glctx gl.Context) error {
	if g.glReady {
		return nil
	}
	prog, err := linkProgram(glctx, blitVertSrc, blitFragSrc)
	if err != nil {
		return err
	}
	// Full-screen strip; v is flipped so frame row 0 lands at the top.
	verts := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}
	g.vbo = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(verts), gl.STATIC_DRAW)

	g.tex = glctx.CreateTexture()
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, g.tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	g.texW, g.texH = 0, 0

	g.prog = prog
	g.aPos = glctx.GetAttribLocation(prog, "aPos")
	g.aUV = glctx.GetAttribLocation(prog, "aUV")
	g.uTex = glctx.GetUniformLocation(prog, "uTex")
	g.glReady = true
	return nil
}

func (g *mobileGame) destroyGL(glctx gl.Context) {
	if !g.glReady {
		return
	}
	glctx.DeleteBuffer(g.vbo)
	glctx.DeleteTexture(g.tex)
	glctx.DeleteProgram(g.prog)
	g.glReady = false
}

func (g *mobileGame) drawGL(glctx gl.Context) {
	if !g.glReady || g.fbWidth <= 0 || g.fbHeight <= 0 {
		return
	}
	g.rend.Draw(g.app.Session)
	f := g.frame

	glctx.Viewport(0, 0, g.fbWidth, g.fbHeight)
	glctx.ClearColor(0, 0, 0, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, g.tex)
	if f.W() != g.texW || f.H() != g.texH {
		g.texW, g.texH = f.W(), f.H()
		glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), g.texW, g.texH, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	glctx.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, g.texW, g.texH, gl.RGBA, gl.UNSIGNED_BYTE, f.Img.Pix)

	glctx.UseProgram(g.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	glctx.EnableVertexAttribArray(g.aPos)
	glctx.EnableVertexAttribArray(g.aUV)
	glctx.VertexAttribPointer(g.aPos, 2, gl.FLOAT, false, 16, 0)
	glctx.VertexAttribPointer(g.aUV, 2, gl.FLOAT, false, 16, 8)
	glctx.Uniform1i(g.uTex, 0)
	glctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// Run starts the Android event loop. There is no file picker, so the demo
// photo is used unless a path is configured.
func Run(o pbapp.Options) {
	g := newMobileGame()
	if o.PhotoPath == "" {
		o.Demo = true
	}
	a, err := pbapp.New(o, g.input, nil)
	if err != nil {
		log.Fatalf("photobreak: %v", err)
	}
	g.app = a
	start := time.Now()

	app.Main(func(ma app.App) {
		var glctx gl.Context
		for e := range ma.Events() {
			switch e := ma.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := g.initGL(glctx); err != nil {
						log.Fatalf("gl init: %v", err)
					}
					ma.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						g.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				g.resize(e)

			case touch.Event:
				g.handleTouch(e)

			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				a.Tick(float64(time.Since(start).Microseconds()) / 1000)
				g.drawGL(glctx)
				ma.Publish()
				ma.Send(paint.Event{})
			}
		}
	})
}
