package terminal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"cubecar/internal/game"
)

// Each terminal cell shows two stacked pixels (upper half block), and each
// pixel covers PixelSize x PixelSize canvas units.
const (
	PixelSize = 8
	CellW     = PixelSize
	CellH     = 2 * PixelSize
)

// CanvasSize is the simulation canvas backing a cols x rows terminal.
func CanvasSize(cols, rows int) (float64, float64) {
	return float64(cols * CellW), float64(rows * CellH)
}

// Raster is a software framebuffer sampled at pixel centres.
type Raster struct {
	W, H int
	Pix  []game.RGB
}

// Reset sizes the raster for a cols x rows terminal and fills it with bg.
func (r *Raster) Reset(cols, rows int, bg game.RGB) {
	r.W, r.H = cols, rows*2
	n := r.W * r.H
	if cap(r.Pix) < n {
		r.Pix = make([]game.RGB, n)
	}
	r.Pix = r.Pix[:n]
	for i := range r.Pix {
		r.Pix[i] = bg
	}
}

func (r *Raster) At(x, y int) game.RGB {
	return r.Pix[y*r.W+x]
}

// FillShape paints a shape centred at (cx, cy) canvas units with the given
// full extent and rotation. A positive outlineWidth paints a band of that
// width, measured inwards from the edge, in outline.
func (r *Raster) FillShape(cx, cy, extent, angle float64, shape game.Shape, col, outline game.RGB, outlineWidth float64) {
	if extent <= 0 {
		return
	}
	reach := extent * math.Sqrt2 / 2
	x0 := max(0, int(math.Floor((cx-reach)/PixelSize)))
	x1 := min(r.W-1, int(math.Ceil((cx+reach)/PixelSize)))
	y0 := max(0, int(math.Floor((cy-reach)/PixelSize)))
	y1 := min(r.H-1, int(math.Ceil((cy+reach)/PixelSize)))

	inner := extent - 2*outlineWidth
	for y := y0; y <= y1; y++ {
		py := (float64(y) + 0.5) * PixelSize
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) * PixelSize
			lx, ly := game.ToLocal(px, py, cx, cy, extent, angle)
			if !game.ShapeContains(shape, lx, ly) {
				continue
			}
			c := col
			if outlineWidth > 0 {
				if inner <= 0 || !game.ShapeContains(shape, lx*extent/inner, ly*extent/inner) {
					c = outline
				}
			}
			r.Pix[y*r.W+x] = c
		}
	}
}

// Draw rasterises a snapshot: cubes, particles, then the player on top.
// The shake offset moves everything horizontally.
func (r *Raster) Draw(snap *game.Snapshot, cols, rows int) {
	r.Reset(cols, rows, game.Palette.Background)
	shake := snap.Shake

	for i := range snap.Cubes {
		c := &snap.Cubes[i]
		cx, cy := c.Center()
		outline := game.Palette.Outline
		if c.Special {
			outline = game.Palette.Special
		}
		r.FillShape(cx+shake, cy, c.Size, c.Angle, c.Shape, c.Col, outline, PixelSize)
	}
	for i := range snap.Particles {
		p := &snap.Particles[i]
		r.FillShape(p.X+shake, p.Y, 2*p.Size, 0, p.Shape, p.Col, p.Col, 0)
	}
	pl := snap.Player
	r.FillShape(pl.X+shake, pl.Y, 2*pl.Radius*pl.Pulse, 0, pl.Shape, pl.Col, pl.Col, 0)

	if snap.Contrast != 1 {
		for i := range r.Pix {
			r.Pix[i] = Contrast(r.Pix[i], snap.Contrast)
		}
	}
}

// Contrast scales a colour's distance from mid grey by k, clamped to gamut.
func Contrast(c game.RGB, k float64) game.RGB {
	f := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	f = colorful.Color{
		R: (f.R-0.5)*k + 0.5,
		G: (f.G-0.5)*k + 0.5,
		B: (f.B-0.5)*k + 0.5,
	}.Clamped()
	r, g, b := f.RGB255()
	return game.RGB{R: r, G: g, B: b}
}
