// Package config is the configuration provider: it resolves the game settings
// from defaults, CUBECAR_* environment variables and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strconv"
	"time"

	"cubecar/internal/game"
)

// Environment variables, checked before flags.
const (
	EnvAccel     = "CUBECAR_ACCEL"
	EnvColor     = "CUBECAR_COLOR"
	EnvName      = "CUBECAR_NAME"
	EnvCubeScale = "CUBECAR_CUBE_SCALE"
	EnvImage     = "CUBECAR_IMAGE"
	EnvSeed      = "CUBECAR_SEED"
)

// Canvas defaults for the desktop window.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
)

type Config struct {
	Width, Height int
	Acceleration  float64
	Color         string
	Name          string
	CubeScale     int
	ImagePath     string
	Seed          uint64
	Debug         bool

	// Warnings lists ignored environment values. Load does not log them so the
	// caller can route logging first.
	Warnings []string
}

func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Acceleration: game.DefaultAcceleration,
		Color:        game.DefaultColor,
		Name:         game.DefaultName,
		CubeScale:    game.DefaultCubeScale,
		Seed:         uint64(time.Now().UnixNano()),
	}
}

// Load resolves the configuration. getenv is usually os.Getenv. Bad
// environment values are logged and ignored; bad flags are returned as errors.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	c := Default()
	c.applyEnv(getenv)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.Float64Var(&c.Acceleration, "accel", c.Acceleration, "player acceleration per frame")
	fs.StringVar(&c.Color, "color", c.Color, "player colour as #rrggbb")
	fs.StringVar(&c.Name, "name", c.Name, "player name")
	fs.IntVar(&c.CubeScale, "cube-scale", c.CubeScale, "largest cube size in pixels")
	fs.StringVar(&c.ImagePath, "image", c.ImagePath, "decorative player image (png, jpeg, gif)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.BoolVar(&c.Debug, "debug", false, "write a debug log under logs/")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Config) applyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if s := getenv(EnvAccel); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			c.Acceleration = v
		} else {
			c.warnf("ignoring %s=%q", EnvAccel, s)
		}
	}
	if s := getenv(EnvColor); s != "" {
		if _, err := game.ParseHex(s); err == nil {
			c.Color = s
		} else {
			c.warnf("ignoring %s=%q: %v", EnvColor, s, err)
		}
	}
	if s := getenv(EnvName); s != "" {
		c.Name = s
	}
	if s := getenv(EnvCubeScale); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > int(game.CubeMinSize) {
			c.CubeScale = v
		} else {
			c.warnf("ignoring %s=%q", EnvCubeScale, s)
		}
	}
	if s := getenv(EnvImage); s != "" {
		c.ImagePath = s
	}
	if s := getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		} else {
			c.warnf("ignoring %s=%q", EnvSeed, s)
		}
	}
}

var ErrInvalid = errors.New("invalid configuration")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Acceleration <= 0 {
		return fmt.Errorf("%w: acceleration %g must be positive", ErrInvalid, c.Acceleration)
	}
	if c.CubeScale <= int(game.CubeMinSize) {
		return fmt.Errorf("%w: cube scale %d must exceed %g", ErrInvalid, c.CubeScale, game.CubeMinSize)
	}
	if _, err := game.ParseHex(c.Color); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Settings builds the simulation settings, loading the player image if one is
// configured. An unreadable image is logged and skipped.
func (c Config) Settings() game.Settings {
	col, err := game.ParseHex(c.Color)
	if err != nil {
		col = game.DefaultSettings().Color
	}
	s := game.Settings{
		Acceleration: c.Acceleration,
		Color:        col,
		Name:         c.Name,
		CubeScale:    c.CubeScale,
	}
	if c.ImagePath != "" {
		img, err := LoadImage(c.ImagePath)
		if err != nil {
			log.Printf("config: %v", err)
		} else {
			s.Image = img
		}
	}
	return s.WithDefaults()
}

// LoadImage decodes a PNG, JPEG or GIF file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
