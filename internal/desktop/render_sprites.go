package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"cubecar/internal/game"
)

// AppendParticleSprites packs particles into the sprite buffer format
// [x, y, size, r, g, b, a, shape]. Size is the point diameter in framebuffer
// pixels; pxScale converts canvas pixels to framebuffer pixels.
func AppendParticleSprites(buf []float32, particles []game.Particle, pxScale float64) []float32 {
	for i := range particles {
		p := &particles[i]
		cr, cg, cb := p.Col.Floats()
		buf = append(buf,
			float32(p.X), float32(p.Y),
			float32(2*p.Size*pxScale),
			cr, cg, cb, 1,
			float32(p.Shape),
		)
	}
	return buf
}

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a, shape] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / spriteStride
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
