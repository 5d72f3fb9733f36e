package sim

// World dimensions in pixels.
const (
	WorldWidth  = 1000
	WorldHeight = 700
)

// Timing.
const (
	TicksPerSecond = 60
	StarCount      = 100
)

// Physics. Units are pixels and ticks.
const (
	Gravity       = 0.15
	AirResistance = 0.985
	RocketGravity = Gravity * 0.7
	EmberShrink   = 0.05
	HistoryLen    = 5
)

// Spawn probabilities, per tick.
const (
	LaunchChance       = 0.015
	EmberChance        = 0.3
	GlitterChance      = 0.05
	GlitterBurstChance = 0.7
	GlitterLifeFrac    = 0.4
	SparkleChance      = 0.01
)

// Rendering.
const (
	FadeAlpha    = 20
	RocketRadius = 4
)

// Particles.
const MaxParticles = 20000
