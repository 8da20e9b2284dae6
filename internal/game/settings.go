package game

import (
	"image"
	"math"
)

// Settings is the configuration snapshot the simulation consumes. Zero fields
// mean "not provided" and fall back to the defaults.
type Settings struct {
	Acceleration float64
	Color        RGB
	Name         string // cosmetic
	CubeScale    int
	Image        image.Image // decorative player image, may be nil
}

func DefaultSettings() Settings {
	col, _ := ParseHex(DefaultColor)
	return Settings{
		Acceleration: DefaultAcceleration,
		Color:        col,
		Name:         DefaultName,
		CubeScale:    DefaultCubeScale,
	}
}

// WithDefaults fills every missing field from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.Acceleration <= 0 || math.IsNaN(s.Acceleration) || math.IsInf(s.Acceleration, 0) {
		s.Acceleration = d.Acceleration
	}
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.CubeScale == 0 {
		s.CubeScale = d.CubeScale
	}
	return s
}

// Edit is a single runtime settings change bound to a hotkey.
type Edit uint8

const (
	EditNone Edit = iota
	EditAccelUp
	EditAccelDown
	EditScaleUp
	EditScaleDown
	EditNextColor
	EditRegenerate
)

// Settings hotkey steps.
const (
	AccelStep    = 0.1
	AccelMax     = 5.0
	ScaleStep    = 5
	ScaleMinEdit = int(CubeMinSize) + ScaleStep
)

// Adjust returns s with e applied. EditRegenerate returns s unchanged; the
// caller reapplies it to get a new field.
func (s Settings) Adjust(e Edit) Settings {
	switch e {
	case EditAccelUp:
		s.Acceleration = min(s.Acceleration+AccelStep, AccelMax)
	case EditAccelDown:
		s.Acceleration = max(s.Acceleration-AccelStep, AccelStep)
	case EditScaleUp:
		s.CubeScale += ScaleStep
	case EditScaleDown:
		s.CubeScale = max(s.CubeScale-ScaleStep, ScaleMinEdit)
	case EditNextColor:
		s.Color = NextPlayerColor(s.Color)
	}
	return s
}
