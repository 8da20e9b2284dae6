package game

type EffectPhase uint8

const (
	EffectIdle EffectPhase = iota
	EffectActive
	EffectDecaying
)

func (p EffectPhase) String() string {
	switch p {
	case EffectActive:
		return "active"
	case EffectDecaying:
		return "decaying"
	}
	return "idle"
}

// CollisionEffect is the shake and contrast flash shown when the player bounces
// off a cube. It is driven by the simulation tick: Active for EffectPhaseTicks
// (shifted right, high contrast), then Decaying for EffectPhaseTicks (shifted
// left, normal contrast), then Idle. Triggering again restarts Active.
type CollisionEffect struct {
	Phase EffectPhase
	timer int
}

func (e *CollisionEffect) Trigger() {
	e.Phase = EffectActive
	e.timer = EffectPhaseTicks
}

func (e *CollisionEffect) Advance() {
	if e.Phase == EffectIdle {
		return
	}
	e.timer--
	if e.timer > 0 {
		return
	}
	switch e.Phase {
	case EffectActive:
		e.Phase = EffectDecaying
		e.timer = EffectPhaseTicks
	default:
		e.Phase = EffectIdle
		e.timer = 0
	}
}

// Shake is the horizontal screen offset in canvas pixels.
func (e CollisionEffect) Shake() float64 {
	switch e.Phase {
	case EffectActive:
		return EffectShake
	case EffectDecaying:
		return -EffectShake
	}
	return 0
}

// Contrast is the contrast multiplier the renderer should apply (1 = none).
func (e CollisionEffect) Contrast() float64 {
	if e.Phase == EffectActive {
		return EffectContrast
	}
	return 1
}
