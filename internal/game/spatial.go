package game

// Rect is an axis-aligned rectangle in canvas-pixel space.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Intersects uses strict comparisons: rectangles that only share an edge do
// not overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r Rect) Contains(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// SquareAt returns the box of the given half-extent centred on (cx, cy).
func SquareAt(cx, cy, half float64) Rect {
	return Rect{X0: cx - half, Y0: cy - half, X1: cx + half, Y1: cy + half}
}
