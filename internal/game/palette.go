package game

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the channels normalised to 0..1.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// ParseHex parses a #rrggbb (or #rgb) colour string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RandomRGB picks a uniformly random colour.
func RandomRGB(r *Rand) RGB {
	return RGB{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
}

var Palette = struct {
	Background RGB
	Outline    RGB
	Special    RGB
}{
	Background: RGB{R: 255, G: 255, B: 255},
	Outline:    RGB{R: 0, G: 0, B: 0},
	Special:    RGB{R: 255, G: 215, B: 0},
}

// PlayerColors is the cycle used by the colour hotkey.
var PlayerColors = []RGB{
	{R: 0, G: 0, B: 0},
	{R: 200, G: 40, B: 40},
	{R: 30, G: 110, B: 220},
	{R: 40, G: 160, B: 70},
	{R: 150, G: 60, B: 190},
	{R: 240, G: 130, B: 20},
}

// NextPlayerColor returns the colour after c in PlayerColors, or the first one
// when c is not part of the cycle.
func NextPlayerColor(c RGB) RGB {
	for i, pc := range PlayerColors {
		if pc == c {
			return PlayerColors[(i+1)%len(PlayerColors)]
		}
	}
	return PlayerColors[0]
}
