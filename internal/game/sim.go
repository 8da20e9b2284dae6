package game

import (
	"fmt"
	"image"

	"github.com/google/uuid"
)

// Simulation owns the whole game state and advances it one frame at a time.
// It is not safe for concurrent use: frontends call it from their frame loop
// only, and feed input and settings edits in between steps.
type Simulation struct {
	ID            uuid.UUID
	Width, Height float64
	Tick          uint64

	Player    *Player
	Cubes     []Cube
	Particles *ParticleSystem
	Effect    CollisionEffect
	Events    *EventBus

	settings Settings
	rnd      *Rand // field layout and shape rolls
	turnRnd  *Rand // random cube course changes
}

// NewSimulation builds a w x h game with the player centred and a fresh cube
// field. The same seed and inputs always replay the same game.
func NewSimulation(w, h float64, settings Settings, seed uint64) (*Simulation, error) {
	root := NewRand(seed)
	id, err := uuid.NewRandomFromReader(root)
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	s := &Simulation{
		ID:        id,
		Width:     w,
		Height:    h,
		Particles: NewParticleSystem(root.NextU64()),
		Events:    NewEventBus(),
		rnd:       root.Derive(0xF1E1D),
		turnRnd:   root.Derive(0x7E57),
	}
	settings = settings.WithDefaults()
	s.Player = NewPlayer(w/2, h/2, settings.Color, settings.Acceleration, RandomPlayerShape(s.rnd))
	if err := s.ApplySettings(settings); err != nil {
		return nil, err
	}
	return s, nil
}

// Settings returns the settings currently in effect.
func (s *Simulation) Settings() Settings {
	return s.settings
}

// ApplySettings takes a new configuration snapshot: the player picks up the
// colour and acceleration, rolls a new shape, and the cube field is
// regenerated. Radius and position carry over. On error nothing changes.
func (s *Simulation) ApplySettings(settings Settings) error {
	settings = settings.WithDefaults()
	cubes, err := GenerateField(s.Width, s.Height, settings.CubeScale, s.rnd)
	if err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}

	s.settings = settings
	s.Player.Col = settings.Color
	s.Player.Accel = settings.Acceleration
	s.Player.Shape = RandomPlayerShape(s.rnd)
	s.Cubes = cubes

	s.Events.Emit(Event{Type: EventFieldGenerated, Tick: s.Tick, Count: len(cubes)})
	return nil
}

// SetPlayerImage swaps the decorative player image. The field is left alone.
func (s *Simulation) SetPlayerImage(img image.Image) {
	s.settings.Image = img
}

// Resize changes the canvas size and pulls every entity back inside it.
// Cubes too big for the new canvas burst.
func (s *Simulation) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Width, s.Height = w, h
	s.Player.Clamp(w, h)
	kept := s.Cubes[:0]
	for _, c := range s.Cubes {
		if !c.Fits(w, h) {
			s.emitBurst(c)
			continue
		}
		c.clampInto(w, h)
		kept = append(kept, c)
	}
	s.Cubes = kept
}

// Step advances the game by one frame using the keys held right now.
func (s *Simulation) Step(keys KeyState) {
	s.Effect.Advance()

	s.Player.ApplyInput(keys)
	s.Cubes = s.Player.Step(s.Cubes, s.Width, s.Height, s.consume, s.bounce)

	for i := range s.Cubes {
		s.Cubes[i].Advance(s.Width, s.Height, s.turnRnd.Chance(CubeTurnChance))
	}
	var burst []Cube
	s.Cubes, burst = Clash(s.Cubes, s.Width, s.Height, float64(s.settings.CubeScale)*CubeBurstScale)
	for i := range burst {
		s.emitBurst(burst[i])
	}

	s.Particles.Update()
	s.Player.Pulse.Advance()
	s.Tick++
}

func (s *Simulation) emitBurst(c Cube) {
	cx, cy := c.Center()
	s.Events.Emit(Event{Type: EventCubeBurst, Tick: s.Tick, X: cx, Y: cy, CubeID: c.ID, Size: c.Size})
}

func (s *Simulation) consume(c Cube) {
	s.Particles.Burst(&c)
	cx, cy := c.Center()
	s.Events.Emit(Event{Type: EventCubeEaten, Tick: s.Tick, X: cx, Y: cy, CubeID: c.ID, Size: s.Player.Radius})
}

func (s *Simulation) bounce(c Cube) {
	s.Effect.Trigger()
	cx, cy := c.Center()
	s.Events.Emit(Event{Type: EventBounce, Tick: s.Tick, X: cx, Y: cy, CubeID: c.ID, Size: c.Size})
}

// Edit applies a hotkey settings change. Every edit, including
// EditRegenerate, lays out a new cube field.
func (s *Simulation) Edit(e Edit) error {
	if e == EditNone {
		return nil
	}
	return s.ApplySettings(s.settings.Adjust(e))
}
