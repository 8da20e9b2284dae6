package game

import "math"

type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeHexagon
	ShapeStar

	ShapeCount // must stay last
)

// playerShapeCount limits players and particles to the first three shapes.
const playerShapeCount = ShapeHexagon

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeHexagon:
		return "hexagon"
	case ShapeStar:
		return "star"
	}
	return "unknown"
}

func RandomPlayerShape(r *Rand) Shape {
	return Shape(r.Intn(int(playerShapeCount)))
}

func RandomCubeShape(r *Rand) Shape {
	return Shape(r.Intn(int(ShapeCount)))
}

// StarInner is the inner-vertex radius of the star relative to its outer radius 0.5.
const StarInner = 0.2

type vec2 struct{ x, y float64 }

// Outlines in shape-local unit space: centred on the origin, half-extent 0.5,
// y pointing down like the canvas.
var (
	triangleOutline = []vec2{{0, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	hexagonOutline  = regularOutline(6, 0.5, 0.5)
	starOutline     = regularOutline(10, 0.5, StarInner)
)

// regularOutline builds an n-vertex polygon, pointy side up, alternating between
// radius a (even vertices) and b (odd vertices).
func regularOutline(n int, a, b float64) []vec2 {
	out := make([]vec2, n)
	for i := range n {
		ang := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		rad := a
		if i%2 == 1 {
			rad = b
		}
		out[i] = vec2{x: math.Cos(ang) * rad, y: math.Sin(ang) * rad}
	}
	return out
}

// ShapeContains reports whether the shape-local point (x, y) is inside the shape.
func ShapeContains(s Shape, x, y float64) bool {
	switch s {
	case ShapeCircle:
		return x*x+y*y <= 0.25
	case ShapeSquare:
		return math.Abs(x) <= 0.5 && math.Abs(y) <= 0.5
	case ShapeTriangle:
		return polygonContains(triangleOutline, x, y)
	case ShapeHexagon:
		return polygonContains(hexagonOutline, x, y)
	case ShapeStar:
		return polygonContains(starOutline, x, y)
	}
	return false
}

// polygonContains is an even-odd ray cast; works for the concave star too.
func polygonContains(poly []vec2, x, y float64) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.y > y) != (b.y > y) {
			cx := a.x + (y-a.y)*(b.x-a.x)/(b.y-a.y)
			if x < cx {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ToLocal maps a canvas point into the unit space of a shape drawn with the
// given centre, full extent and rotation.
func ToLocal(px, py, cx, cy, extent, angle float64) (float64, float64) {
	if extent <= 0 {
		return math.Inf(1), math.Inf(1)
	}
	dx := px - cx
	dy := py - cy
	c := math.Cos(-angle)
	s := math.Sin(-angle)
	return (c*dx - s*dy) / extent, (s*dx + c*dy) / extent
}
