package game

import (
	"math"
	"testing"
)

func TestShapeContainsCentre(t *testing.T) {
	for s := Shape(0); s < ShapeCount; s++ {
		if !ShapeContains(s, 0, 0.05) {
			t.Fatalf("%v does not contain its centre", s)
		}
		if ShapeContains(s, 0.6, 0.6) {
			t.Fatalf("%v contains a point outside its box", s)
		}
	}
}

func TestShapeContainsCorners(t *testing.T) {
	for _, tc := range []struct {
		s      Shape
		x, y   float64
		inside bool
	}{
		{ShapeSquare, 0.49, 0.49, true},
		{ShapeCircle, 0.49, 0.49, false},
		{ShapeTriangle, 0.45, 0.45, true},
		{ShapeTriangle, 0.45, -0.45, false},
		{ShapeStar, 0, -0.45, true},
		{ShapeStar, 0.2, -0.3, false},
		{ShapeHexagon, 0, -0.45, true},
		{ShapeHexagon, 0.45, -0.45, false},
	} {
		if got := ShapeContains(tc.s, tc.x, tc.y); got != tc.inside {
			t.Fatalf("%v contains (%g,%g) = %v, want %v", tc.s, tc.x, tc.y, got, tc.inside)
		}
	}
}

func TestToLocalUndoesRotation(t *testing.T) {
	// A point to the right of the centre, on a shape rotated a quarter turn,
	// lands on the local -y axis.
	x, y := ToLocal(110, 50, 100, 50, 20, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y+0.5) > 1e-9 {
		t.Fatalf("local = (%f,%f), want (0,-0.5)", x, y)
	}
}

func TestRandomShapes(t *testing.T) {
	r := NewRand(17)
	seen := make(map[Shape]bool)
	for range 500 {
		if s := RandomPlayerShape(r); s >= ShapeHexagon {
			t.Fatalf("player shape %v out of range", s)
		}
		seen[RandomCubeShape(r)] = true
	}
	if len(seen) != int(ShapeCount) {
		t.Fatalf("cube shapes seen = %d, want %d", len(seen), ShapeCount)
	}
}
