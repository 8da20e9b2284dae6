package game

// Player is the car: a shape steered by the movement keys that grows by eating
// smaller cubes and bounces off the rest.
type Player struct {
	X, Y   float64
	VX, VY float64

	Radius   float64 // never shrinks
	Shape    Shape
	Col      RGB
	Accel    float64
	Friction float64
	MaxSpeed float64

	Pulse Pulse
}

func NewPlayer(x, y float64, col RGB, accel float64, shape Shape) *Player {
	return &Player{
		X:        x,
		Y:        y,
		Radius:   PlayerStartRadius,
		Shape:    shape,
		Col:      col,
		Accel:    accel,
		Friction: PlayerFriction,
		MaxSpeed: PlayerMaxSpeed,
	}
}

// Bounds is the square enclosing the player's circle centred at (cx, cy).
func (p *Player) Bounds(cx, cy float64) Rect {
	return SquareAt(cx, cy, p.Radius)
}

// ApplyInput accelerates along each held direction, capped at MaxSpeed.
// Released keys do nothing here; friction slows the player in Step.
func (p *Player) ApplyInput(keys KeyState) {
	if keys.Held(DirUp) {
		p.VY = max(p.VY-p.Accel, -p.MaxSpeed)
	}
	if keys.Held(DirDown) {
		p.VY = min(p.VY+p.Accel, p.MaxSpeed)
	}
	if keys.Held(DirLeft) {
		p.VX = max(p.VX-p.Accel, -p.MaxSpeed)
	}
	if keys.Held(DirRight) {
		p.VX = min(p.VX+p.Accel, p.MaxSpeed)
	}
}

// Step applies friction, resolves contacts against cubes at the tentative
// position and moves the player, keeping it on a w x h canvas.
//
// Every contact is decided against the radius and position at the start of the
// step. A cube smaller than the player is eaten: removed, passed to onConsume,
// and 10% of its size is added to the radius. Any other cube is a bounce: for
// each such cube, in slice order, every axis it was hit on is negated and
// scaled by BounceDamping, then onBounce fires. Two cubes hit on X in one step
// therefore leave vx at +0.25 of its value. A cube is hit on X when moving
// along X alone reaches it, and likewise for Y; a corner entry that neither
// axis reaches alone hits both.
//
// Returns the surviving cubes; the input slice is reused.
func (p *Player) Step(cubes []Cube, w, h float64, onConsume, onBounce func(Cube)) []Cube {
	p.VX *= 1 - p.Friction
	p.VY *= 1 - p.Friction

	nextX := p.X + p.VX
	nextY := p.Y + p.VY
	box := p.Bounds(nextX, nextY)
	alongX := p.Bounds(nextX, p.Y)
	alongY := p.Bounds(p.X, nextY)

	type hit struct {
		i      int
		hx, hy bool
	}
	eaten := make([]bool, len(cubes))
	var bounced []hit
	var growth float64
	for i := range cubes {
		cb := cubes[i].Bounds()
		if !box.Intersects(cb) {
			continue
		}
		if p.Radius > cubes[i].Size {
			eaten[i] = true
			growth += cubes[i].Size * PlayerGrowth
			continue
		}
		hx := alongX.Intersects(cb)
		hy := alongY.Intersects(cb)
		if !hx && !hy {
			hx, hy = true, true
		}
		bounced = append(bounced, hit{i: i, hx: hx, hy: hy})
	}

	for _, b := range bounced {
		if b.hx {
			p.VX = -p.VX * BounceDamping
		}
		if b.hy {
			p.VY = -p.VY * BounceDamping
		}
		if onBounce != nil {
			onBounce(cubes[b.i])
		}
	}
	p.Radius += growth

	kept := cubes[:0]
	for i := range cubes {
		c := cubes[i]
		if eaten[i] {
			if onConsume != nil {
				onConsume(c)
			}
			continue
		}
		kept = append(kept, c)
	}

	p.X += p.VX
	p.Y += p.VY
	p.Clamp(w, h)
	return kept
}

// Clamp keeps the player's circle on the canvas. A player wider than the
// canvas is centred on that axis.
func (p *Player) Clamp(w, h float64) {
	p.X = clampCentre(p.X, p.Radius, w)
	p.Y = clampCentre(p.Y, p.Radius, h)
}

// DrawExtent is the full on-screen size of the player including the pulse.
func (p *Player) DrawExtent() float64 {
	return 2 * p.Radius * p.Pulse.Scale()
}
