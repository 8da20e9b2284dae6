package game

import (
	"errors"
	"fmt"
)

var (
	// ErrPlacementInfeasible means the cube field could not be laid out without
	// overlaps, usually because the cube scale is too large for the canvas.
	ErrPlacementInfeasible = errors.New("cube placement infeasible")
	ErrInvalidCubeScale    = errors.New("invalid cube scale")
)

// GenerateField lays out CubeCount mutually non-overlapping cubes on a w x h
// canvas by rejection sampling. Each cube gets at most PlacementMaxAttempts
// candidates.
func GenerateField(w, h float64, cubeScale int, r *Rand) ([]Cube, error) {
	return generateField(w, h, cubeScale, CubeCount, PlacementMaxAttempts, r)
}

func generateField(w, h float64, cubeScale, count, maxAttempts int, r *Rand) ([]Cube, error) {
	scale := float64(cubeScale)
	if scale <= CubeMinSize {
		return nil, fmt.Errorf("%w: %d must exceed %g", ErrInvalidCubeScale, cubeScale, CubeMinSize)
	}
	if w <= scale || h <= scale {
		return nil, fmt.Errorf("%w: canvas %gx%g not larger than cube scale %d", ErrPlacementInfeasible, w, h, cubeScale)
	}

	cubes := make([]Cube, 0, count)
	for len(cubes) < count {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			c := NewRandomCube(w, h, scale, r)
			if !overlapsAny(c.Bounds(), cubes) {
				cubes = append(cubes, c)
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("%w: cube %d of %d after %d attempts (canvas %gx%g, scale %d)",
				ErrPlacementInfeasible, len(cubes)+1, count, maxAttempts, w, h, cubeScale)
		}
	}
	return cubes, nil
}

func overlapsAny(b Rect, cubes []Cube) bool {
	for i := range cubes {
		if b.Intersects(cubes[i].Bounds()) {
			return true
		}
	}
	return false
}
