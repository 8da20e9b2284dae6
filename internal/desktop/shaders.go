package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape vertex shader: one unit quad per entity, placed by uniforms.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uCenter;
uniform float uExtent;
uniform float uRotation;
uniform float uShake;
uniform vec2 uResolution;

out vec2 vLocal;

void main() {
    vLocal = aPos - 0.5;
    vec2 local = vLocal * uExtent;
    float c = cos(uRotation);
    float s = sin(uRotation);
    vec2 rot = vec2(c * local.x - s * local.y, s * local.x + c * local.y);
    vec2 screenPos = uCenter + rot + vec2(uShake, 0.0);
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Shared shape tests in unit space (half-extent 0.5, y down).
const shapeLib = `
const float PI = 3.14159265;

vec2 ringVertex(int i, int n, float a, float b) {
    float ang = -PI * 0.5 + float(i) * 2.0 * PI / float(n);
    float r = (i % 2 == 1) ? b : a;
    return vec2(cos(ang), sin(ang)) * r;
}

bool ringInside(vec2 p, int n, float a, float b) {
    bool inside = false;
    vec2 prev = ringVertex(n - 1, n, a, b);
    for (int i = 0; i < 10; i++) {
        if (i >= n) break;
        vec2 cur = ringVertex(i, n, a, b);
        if ((cur.y > p.y) != (prev.y > p.y)) {
            float cx = cur.x + (p.y - cur.y) * (prev.x - cur.x) / (prev.y - cur.y);
            if (p.x < cx) inside = !inside;
        }
        prev = cur;
    }
    return inside;
}

bool triangleInside(vec2 p) {
    if (p.y < -0.5 || p.y > 0.5) return false;
    float hw = (p.y + 0.5) * 0.5;
    return abs(p.x) <= hw;
}

bool shapeInside(int shape, vec2 p) {
    if (shape == 0) return dot(p, p) <= 0.25;
    if (shape == 1) return abs(p.x) <= 0.5 && abs(p.y) <= 0.5;
    if (shape == 2) return triangleInside(p);
    if (shape == 3) return ringInside(p, 6, 0.5, 0.5);
    if (shape == 4) return ringInside(p, 10, 0.5, uStarInner);
    return false;
}

vec3 applyContrast(vec3 c) {
    return clamp((c - 0.5) * uContrast + 0.5, 0.0, 1.0);
}
`

// Shape fragment shader: filled shape with an optional outline band and an
// optional texture masked by the shape.
const shapeFragSrc = `#version 410 core

uniform int uShape;
uniform float uExtent;
uniform vec3 uColor;
uniform vec3 uOutline;
uniform float uOutlineWidth;
uniform float uStarInner;
uniform float uContrast;
uniform bool uUseTex;
uniform sampler2D uTex;

in vec2 vLocal;
out vec4 FragColor;
` + shapeLib + `
void main() {
    if (!shapeInside(uShape, vLocal)) discard;
    vec3 col = uColor;
    if (uUseTex) {
        vec4 t = texture(uTex, vLocal + 0.5);
        col = mix(col, t.rgb, t.a);
    }
    if (uOutlineWidth > 0.0) {
        float inner = uExtent - 2.0 * uOutlineWidth;
        if (inner <= 0.0 || !shapeInside(uShape, vLocal * uExtent / inner)) {
            col = uOutline;
        }
    }
    FragColor = vec4(applyContrast(col), 1.0);
}
` + "\x00"

// Particle vertex shader: point sprites with per-vertex pos/size/colour/shape.
const particleVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aShape;

uniform float uShake;
uniform vec2 uResolution;

out vec4 vColor;
flat out int vShape;

void main() {
    vec2 screenPos = aPos + vec2(uShake, 0.0);
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize + 0.5));
    vColor = aColor;
    vShape = int(aShape + 0.5);
}
` + "\x00"

// Particle fragment shader: the sprite square is clipped to the particle shape.
const particleFragSrc = `#version 410 core

uniform float uStarInner;
uniform float uContrast;

in vec4 vColor;
flat in int vShape;
out vec4 FragColor;
` + shapeLib + `
void main() {
    if (!shapeInside(vShape, gl_PointCoord - vec2(0.5))) discard;
    FragColor = vec4(applyContrast(vColor.rgb), vColor.a);
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
