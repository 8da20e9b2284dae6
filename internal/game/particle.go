package game

// Particle is a short-lived fragment thrown out when a cube is eaten.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size  float64 // radius
	Col   RGB
	Shape Shape
	Life  int // ticks left
}

// Update moves the particle one tick and burns one tick of life.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
}

func (p *Particle) Expired() bool {
	return p.Life <= 0
}

type ParticleSystem struct {
	P   []Particle
	rnd *Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{
		P:   make([]Particle, 0, ParticleBurst*4),
		rnd: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

// Burst spawns ParticleBurst particles at the centre of c, in its colour.
func (ps *ParticleSystem) Burst(c *Cube) {
	cx, cy := c.Center()
	r := ps.rnd
	for range ParticleBurst {
		ps.P = append(ps.P, Particle{
			X: cx, Y: cy,
			VX:    r.RangeF(-ParticleMaxSpeed, ParticleMaxSpeed),
			VY:    r.RangeF(-ParticleMaxSpeed, ParticleMaxSpeed),
			Size:  r.RangeF(ParticleMinSize, ParticleMaxSize),
			Col:   c.Col,
			Shape: RandomPlayerShape(r),
			Life:  ParticleLife,
		})
	}
}

// Update advances every particle and drops the expired ones. Survivors keep
// their relative order.
func (ps *ParticleSystem) Update() {
	kept := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.Update()
		if p.Expired() {
			continue
		}
		kept = append(kept, p)
	}
	// Clear the tail so dropped particles do not linger in the backing array.
	for i := len(kept); i < len(ps.P); i++ {
		ps.P[i] = Particle{}
	}
	ps.P = kept
}
