//go:build !android

package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: unit quad stretched over a canvas rect, with a UV rect
// for photo crops. uOffset carries the screen shake.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec4 uRect;   // x0, y0, x1, y1 in canvas pixels
uniform vec4 uUV;     // u0, v0, u1, v1
uniform vec2 uOffset;
uniform vec2 uResolution;

out vec2 vUV;
out vec2 vLocal;

void main() {
    vLocal = aPos;
    vUV = mix(uUV.xy, uUV.zw, aPos);
    vec2 canvasPos = mix(uRect.xy, uRect.zw, aPos) + uOffset;
    vec2 ndc = (canvasPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Quad fragment shader: photo texel or flat colour, optional bomb tint and a
// thin light outline.
const quadFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform int uUseTex;
uniform vec4 uColor;
uniform vec4 uTint;
uniform vec2 uEdge; // outline width in quad units, 0 disables

in vec2 vUV;
in vec2 vLocal;
out vec4 FragColor;

void main() {
    vec4 c = uColor;
    if (uUseTex == 1) {
        c = vec4(texture(uTex, vUV).rgb, uColor.a);
    }
    c.rgb = mix(c.rgb, uTint.rgb, uTint.a);
    if (uEdge.x > 0.0) {
        vec2 d = min(vLocal, 1.0 - vLocal);
        if (d.x < uEdge.x || d.y < uEdge.y) {
            c.rgb = mix(c.rgb, vec3(1.0), 0.3);
        }
    }
    FragColor = c;
}
` + "\x00"

// Particle vertex shader: point sprites with per-vertex pos/size/color/rotation.
const particleVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uOffset;
uniform vec2 uResolution;
uniform float uPixelScale;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 canvasPos = aPos + uOffset;
    vec2 ndc = (canvasPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uPixelScale + 0.5));
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Solid square point sprite.
const particleFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Glow fragment shader: additive radial falloff.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

// Ball fragment shader: round sprite with a hot centre.
const ballFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    if (dist > 1.0) discard;
    vec3 col = mix(vec3(1.0), vColor.rgb, smoothstep(0.2, 0.7, dist));
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Text vertex shader: canvas-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: glyph coverage in the atlas alpha.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uFontTex, vUV).a;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
