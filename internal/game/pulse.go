package game

// Pulse is the player's breathing scale. It moves PulseStep per tick and turns
// around once it passes 1±PulseMaxSteps*PulseStep. Counting whole steps keeps
// the turning points exact.
type Pulse struct {
	steps int
	dir   int
}

func (p *Pulse) Advance() {
	if p.dir == 0 {
		p.dir = 1
	}
	p.steps += p.dir
	if p.steps > PulseMaxSteps || p.steps < -PulseMaxSteps {
		p.dir = -p.dir
	}
}

func (p Pulse) Scale() float64 {
	return 1 + float64(p.steps)*PulseStep
}

// Rising reports whether the scale is currently growing.
func (p Pulse) Rising() bool {
	return p.dir >= 0
}
