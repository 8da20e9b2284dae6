package game

import (
	"math"
	"testing"
)

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{Acceleration: math.NaN()}.WithDefaults()
	d := DefaultSettings()
	if s.Acceleration != d.Acceleration || s.Name != d.Name || s.CubeScale != d.CubeScale || s.Color != d.Color {
		t.Fatalf("settings = %+v, want %+v", s, d)
	}

	custom := Settings{Acceleration: 2, Name: "Van", CubeScale: 70, Color: RGB{R: 1}}
	if got := custom.WithDefaults(); got != custom {
		t.Fatalf("provided fields overwritten: %+v", got)
	}
}

func TestSettingsAdjust(t *testing.T) {
	s := DefaultSettings()

	if got := s.Adjust(EditAccelUp).Acceleration; math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("accel up = %f, want 0.6", got)
	}
	low := Settings{Acceleration: AccelStep}
	if got := low.Adjust(EditAccelDown).Acceleration; got != AccelStep {
		t.Fatalf("accel down below floor = %f, want %f", got, AccelStep)
	}
	if got := s.Adjust(EditScaleUp).CubeScale; got != DefaultCubeScale+ScaleStep {
		t.Fatalf("scale up = %d", got)
	}
	small := Settings{CubeScale: ScaleMinEdit}
	if got := small.Adjust(EditScaleDown).CubeScale; got != ScaleMinEdit {
		t.Fatalf("scale down below floor = %d, want %d", got, ScaleMinEdit)
	}
	if got := s.Adjust(EditNextColor).Color; got != PlayerColors[1] {
		t.Fatalf("next colour = %v, want %v", got, PlayerColors[1])
	}
	if got := s.Adjust(EditRegenerate); got != s {
		t.Fatalf("regenerate changed settings: %+v", got)
	}
}
