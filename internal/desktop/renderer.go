package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cubecar/internal/game"
)

const (
	MaxParticleRender = 4096
	CubeOutlineWidth  = 2.0 // canvas pixels
	spriteStride      = 8   // floats per particle: x, y, size, r, g, b, a, shape
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Shape program: cubes and the player.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32

	uCenter       int32
	uExtent       int32
	uRotation     int32
	uShake        int32
	uResolution   int32
	uShape        int32
	uColor        int32
	uOutline      int32
	uOutlineWidth int32
	uContrast     int32
	uUseTex       int32

	// Particle/sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUShake      int32
	spUResolution int32
	spUContrast   int32

	imageTex uint32

	// Reusable render buffer to avoid per-frame heap allocations.
	spriteBuf []float32
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	spriteProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		shapeProg:  shapeProg,
		spriteProg: spriteProg,
	}

	// Shape VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.shapeVAO = qVAO
	r.shapeVBO = qVBO

	gl.UseProgram(shapeProg)
	r.uCenter = uniform(shapeProg, "uCenter")
	r.uExtent = uniform(shapeProg, "uExtent")
	r.uRotation = uniform(shapeProg, "uRotation")
	r.uShake = uniform(shapeProg, "uShake")
	r.uResolution = uniform(shapeProg, "uResolution")
	r.uShape = uniform(shapeProg, "uShape")
	r.uColor = uniform(shapeProg, "uColor")
	r.uOutline = uniform(shapeProg, "uOutline")
	r.uOutlineWidth = uniform(shapeProg, "uOutlineWidth")
	r.uContrast = uniform(shapeProg, "uContrast")
	r.uUseTex = uniform(shapeProg, "uUseTex")
	gl.Uniform1i(uniform(shapeProg, "uTex"), 0)
	gl.Uniform1f(uniform(shapeProg, "uStarInner"), game.StarInner)
	gl.Uniform1f(r.uContrast, 1.0)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aShape (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUShake = uniform(spriteProg, "uShake")
	r.spUResolution = uniform(spriteProg, "uResolution")
	r.spUContrast = uniform(spriteProg, "uContrast")
	gl.Uniform1f(uniform(spriteProg, "uStarInner"), game.StarInner)
	gl.Uniform1f(r.spUContrast, 1.0)

	gl.BindVertexArray(0)
	return r, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.imageTex != 0 {
		gl.DeleteTextures(1, &r.imageTex)
	}
}

// BeginFrame clears to the background colour and sets the per-frame uniforms.
// The canvas (w x h) is stretched over the framebuffer.
func (r *Renderer) BeginFrame(snap *game.Snapshot, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bgR, bgG, bgB := game.Palette.Background.Floats()
	gl.ClearColor(bgR, bgG, bgB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w, h := float32(snap.Width), float32(snap.Height)
	shake := float32(snap.Shake)
	contrast := float32(snap.Contrast)

	gl.UseProgram(r.spriteProg)
	gl.Uniform2f(r.spUResolution, w, h)
	gl.Uniform1f(r.spUShake, shake)
	gl.Uniform1f(r.spUContrast, contrast)

	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.Uniform2f(r.uResolution, w, h)
	gl.Uniform1f(r.uShake, shake)
	gl.Uniform1f(r.uContrast, contrast)
}

// DrawFrame renders one snapshot: cubes, then particles, then the player on top.
func (r *Renderer) DrawFrame(snap *game.Snapshot, fbW, fbH int) {
	r.BeginFrame(snap, fbW, fbH)
	r.DrawCubes(snap.Cubes)

	pxScale := 1.0
	if snap.Width > 0 {
		pxScale = float64(fbW) / snap.Width
	}
	r.spriteBuf = AppendParticleSprites(r.spriteBuf[:0], snap.Particles, pxScale)
	r.DrawSprites(r.spriteBuf)

	r.DrawPlayer(snap.Player)
}

func (r *Renderer) DrawCubes(cubes []game.Cube) {
	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.Uniform1i(r.uUseTex, 0)
	gl.Uniform1f(r.uOutlineWidth, CubeOutlineWidth)
	for i := range cubes {
		c := &cubes[i]
		cx, cy := c.Center()
		outline := game.Palette.Outline
		if c.Special {
			outline = game.Palette.Special
		}
		r.setShape(cx, cy, c.Size, c.Angle, c.Shape, c.Col)
		or, og, ob := outline.Floats()
		gl.Uniform3f(r.uOutline, or, og, ob)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}

// DrawPlayer draws the player's shape at its pulsed size, with the uploaded
// image masked by the shape when there is one.
func (r *Renderer) DrawPlayer(p game.PlayerView) {
	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.Uniform1f(r.uOutlineWidth, 0)
	useTex := p.Image != nil && r.imageTex != 0
	if useTex {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.imageTex)
		gl.Uniform1i(r.uUseTex, 1)
	} else {
		gl.Uniform1i(r.uUseTex, 0)
	}
	r.setShape(p.X, p.Y, 2*p.Radius*p.Pulse, 0, p.Shape, p.Col)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) setShape(cx, cy, extent, angle float64, shape game.Shape, col game.RGB) {
	gl.Uniform2f(r.uCenter, float32(cx), float32(cy))
	gl.Uniform1f(r.uExtent, float32(extent))
	gl.Uniform1f(r.uRotation, float32(angle))
	gl.Uniform1i(r.uShape, int32(shape))
	cr, cg, cb := col.Floats()
	gl.Uniform3f(r.uColor, cr, cg, cb)
}
