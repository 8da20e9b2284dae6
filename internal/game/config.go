package game

// Cube field.
const (
	CubeCount            = 20
	CubeMinSize          = 10.0
	CubeMaxSpeed         = 1.0  // per-axis speed bound, px/tick
	CubeMaxSpin          = 0.01 // rad/tick
	CubeTurnChance       = 0.001
	CubeSpecialChance    = 0.2
	CubeClashGrowth      = 1.1
	CubeBurstScale       = 2.0 // cubes larger than scale*CubeBurstScale are removed
	PlacementMaxAttempts = 10000
)

// Player physics/visual.
const (
	PlayerStartRadius = 50.0
	PlayerFriction    = 0.05
	PlayerMaxSpeed    = 10.0
	PlayerGrowth      = 0.1 // fraction of an eaten cube's size
	BounceDamping     = 0.5
)

// Bounce pulse.
const (
	PulseStep     = 0.01
	PulseMaxSteps = 10 // scale bound = 1 ± PulseMaxSteps*PulseStep
)

// Particles.
const (
	ParticleBurst    = 10
	ParticleLife     = 100
	ParticleMinSize  = 2.0
	ParticleMaxSize  = 7.0
	ParticleMaxSpeed = 2.0
)

// Collision effect, in ticks (100 ms at 60 Hz).
const (
	EffectPhaseTicks = 6
	EffectShake      = 10.0
	EffectContrast   = 2.0
)

// Settings defaults.
const (
	DefaultAcceleration = 0.5
	DefaultColor        = "#000000"
	DefaultName         = "Car"
	DefaultCubeScale    = 50
)
