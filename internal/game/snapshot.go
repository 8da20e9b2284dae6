package game

import "image"

// PlayerView is the drawable state of the player.
type PlayerView struct {
	X, Y   float64
	Radius float64
	Pulse  float64
	Shape  Shape
	Col    RGB
	Name   string
	Image  image.Image
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick          uint64
	Width, Height float64

	Player    PlayerView
	Cubes     []Cube
	Particles []Particle

	Effect   EffectPhase
	Shake    float64
	Contrast float64
}

// Snapshot returns a freshly allocated frame copy.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst, reusing its slices to avoid per-frame allocations.
func (s *Simulation) SnapshotInto(dst *Snapshot) {
	dst.Tick = s.Tick
	dst.Width = s.Width
	dst.Height = s.Height

	p := s.Player
	dst.Player = PlayerView{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Pulse:  p.Pulse.Scale(),
		Shape:  p.Shape,
		Col:    p.Col,
		Name:   s.settings.Name,
		Image:  s.settings.Image,
	}
	dst.Cubes = append(dst.Cubes[:0], s.Cubes...)
	dst.Particles = append(dst.Particles[:0], s.Particles.P...)

	dst.Effect = s.Effect.Phase
	dst.Shake = s.Effect.Shake()
	dst.Contrast = s.Effect.Contrast()
}
