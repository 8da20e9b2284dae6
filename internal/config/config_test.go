package config

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"testing"

	"cubecar/internal/game"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("test", nil, env(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Acceleration != game.DefaultAcceleration || c.Color != game.DefaultColor ||
		c.Name != game.DefaultName || c.CubeScale != game.DefaultCubeScale {
		t.Fatalf("config = %+v, want defaults", c)
	}
	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Fatalf("canvas = %dx%d, want %dx%d", c.Width, c.Height, DefaultWidth, DefaultHeight)
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	e := env(map[string]string{
		EnvAccel:     "1.25",
		EnvColor:     "#ff0000",
		EnvName:      "Zoomer",
		EnvCubeScale: "40",
		EnvSeed:      "1234",
	})
	c, err := Load("test", []string{"-cube-scale", "60", "-name", "Flag"}, e)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Acceleration != 1.25 || c.Color != "#ff0000" || c.Seed != 1234 {
		t.Fatalf("env values not applied: %+v", c)
	}
	if c.CubeScale != 60 || c.Name != "Flag" {
		t.Fatalf("flags did not override env: %+v", c)
	}
}

func TestLoadIgnoresBadEnv(t *testing.T) {
	e := env(map[string]string{
		EnvAccel:     "fast",
		EnvColor:     "blue",
		EnvCubeScale: "5",
		EnvSeed:      "-1",
	})
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	c, err := Load("test", nil, e)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Warnings) != 4 {
		t.Fatalf("warnings got=%q want=4 entries", c.Warnings)
	}
	if buf.Len() != 0 {
		t.Fatalf("Load logged before logging was set up: %q", buf.String())
	}
	if c.Acceleration != game.DefaultAcceleration || c.Color != game.DefaultColor || c.CubeScale != game.DefaultCubeScale {
		t.Fatalf("bad env leaked into config: %+v", c)
	}
}

func TestLoadRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-accel", "0"},
		{"-cube-scale", "10"},
		{"-color", "nope"},
		{"-width", "-5"},
	} {
		_, err := Load("test", args, env(nil))
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("Load(%v) err = %v, want ErrInvalid", args, err)
		}
	}
}

func TestSettingsLoadsImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car.png")
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	c := Default()
	c.Color = "#102030"
	c.ImagePath = path
	s := c.Settings()
	if s.Image == nil || s.Image.Bounds().Dx() != 8 {
		t.Fatalf("image not loaded: %v", s.Image)
	}
	if s.Color != (game.RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Fatalf("colour = %v", s.Color)
	}
}

func TestSettingsSkipsMissingImage(t *testing.T) {
	c := Default()
	c.ImagePath = filepath.Join(t.TempDir(), "missing.png")
	if s := c.Settings(); s.Image != nil {
		t.Fatalf("expected no image, got %v", s.Image)
	}
}
