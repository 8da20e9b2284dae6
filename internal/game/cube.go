package game

import (
	"math"

	"github.com/google/uuid"
)

// Cube is a wandering shape the player either eats or bounces off.
// X, Y is the top-left corner of its bounding box.
type Cube struct {
	ID      uuid.UUID
	X, Y    float64
	DX, DY  float64
	Size    float64 // side length
	Angle   float64
	Spin    float64
	Col     RGB
	Shape   Shape
	Special bool // gold outline only
}

// NewRandomCube samples a cube whose box starts inside [0, w-scale) x [0, h-scale).
func NewRandomCube(w, h, scale float64, r *Rand) Cube {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		id = uuid.New()
	}
	return Cube{
		ID:      id,
		X:       r.RangeF(0, w-scale),
		Y:       r.RangeF(0, h-scale),
		Size:    r.RangeF(CubeMinSize, scale),
		Col:     RandomRGB(r),
		DX:      r.RangeF(-CubeMaxSpeed, CubeMaxSpeed),
		DY:      r.RangeF(-CubeMaxSpeed, CubeMaxSpeed),
		Angle:   r.RangeF(0, 2*math.Pi),
		Spin:    r.RangeF(-CubeMaxSpin, CubeMaxSpin),
		Shape:   RandomCubeShape(r),
		Special: r.Chance(CubeSpecialChance),
	}
}

func (c *Cube) Bounds() Rect {
	return Rect{X0: c.X, Y0: c.Y, X1: c.X + c.Size, Y1: c.Y + c.Size}
}

func (c *Cube) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

// Advance moves the cube one tick inside a w x h canvas, reflecting off the
// walls. reverse flips both velocity components afterwards; callers roll it
// with CubeTurnChance.
func (c *Cube) Advance(w, h float64, reverse bool) {
	c.X += c.DX
	c.Y += c.DY
	c.Angle += c.Spin

	if c.X < 0 || c.X+c.Size > w {
		c.DX = -c.DX
		c.X = clampSpan(c.X, c.Size, w)
	}
	if c.Y < 0 || c.Y+c.Size > h {
		c.DY = -c.DY
		c.Y = clampSpan(c.Y, c.Size, h)
	}

	if reverse {
		c.DX = -c.DX
		c.DY = -c.DY
	}
}

// Fits reports whether the cube's box can lie inside a w x h canvas.
func (c *Cube) Fits(w, h float64) bool {
	return c.Size <= w && c.Size <= h
}

// clampInto pulls the cube back inside the canvas without touching velocity.
func (c *Cube) clampInto(w, h float64) {
	c.X = clampSpan(c.X, c.Size, w)
	c.Y = clampSpan(c.Y, c.Size, h)
}

// Clash resolves cube-vs-cube contact: every cube overlapping another one
// reverses once per partner and grows by CubeClashGrowth per partner. Cubes
// that outgrow limit, or no longer fit the w x h canvas, are dropped. Overlaps
// are decided on the positions before any growth is applied. Returns the
// surviving cubes (reusing the slice) and the ones that burst.
func Clash(cubes []Cube, w, h, limit float64) ([]Cube, []Cube) {
	limit = min(limit, w, h)
	hits := make([]int, len(cubes))
	for i := range cubes {
		bi := cubes[i].Bounds()
		for j := range cubes {
			if i != j && bi.Intersects(cubes[j].Bounds()) {
				hits[i]++
			}
		}
	}

	var burst []Cube
	kept := cubes[:0]
	for i := range cubes {
		c := cubes[i]
		if n := hits[i]; n > 0 {
			if n%2 == 1 {
				c.DX = -c.DX
				c.DY = -c.DY
			}
			c.Size *= math.Pow(CubeClashGrowth, float64(n))
			if c.Size > limit {
				burst = append(burst, c)
				continue
			}
			c.clampInto(w, h)
		}
		kept = append(kept, c)
	}
	return kept, burst
}
