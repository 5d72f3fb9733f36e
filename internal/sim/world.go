package sim

// ParticleSystem is the global pool of free particles. Embers still owned
// by a rocket are not in it.
type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, min(maxParticles, 4096)),
	}
}

func (ps *ParticleSystem) Clear() {
	clear(ps.P)
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

// Update advances every particle one tick and drops the expired ones,
// keeping the survivors in order.
func (ps *ParticleSystem) Update() {
	live := ps.P[:0]
	for _, p := range ps.P {
		p.Update()
		if !p.Expired() {
			live = append(live, p)
		}
	}
	clear(ps.P[len(live):])
	ps.P = live
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// Trigger is an external request to launch one rocket, usually a pointer
// press at (X, Y).
type Trigger struct {
	X, Y float64
}

// Valid reports whether the trigger carries a usable position.
func (t Trigger) Valid() bool { return finite(t.X) && finite(t.Y) }

type Options struct {
	Seed         uint64
	Width        int
	Height       int
	Stars        int
	MaxParticles int
	LaunchChance float64 // ambient launch probability per tick
}

func DefaultOptions(seed uint64) Options {
	return Options{
		Seed:         seed,
		Width:        WorldWidth,
		Height:       WorldHeight,
		Stars:        StarCount,
		MaxParticles: MaxParticles,
		LaunchChance: LaunchChance,
	}
}

// World owns every entity of one fireworks display and advances them one
// tick at a time. It is not safe for concurrent use.
type World struct {
	Width, Height int

	Stars     []Star
	Rockets   []*Rocket
	Particles *ParticleSystem

	Tick uint64

	launchChance float64
	rng          *Rand
	events       *EventBus
	glitter      []Particle
}

func NewWorld(opts Options) *World {
	if opts.Width <= 0 {
		opts.Width = WorldWidth
	}
	if opts.Height <= 0 {
		opts.Height = WorldHeight
	}
	w := &World{
		Width:        opts.Width,
		Height:       opts.Height,
		Particles:    NewParticleSystem(opts.MaxParticles),
		launchChance: clampF(opts.LaunchChance, 0, 1),
		rng:          NewRand(opts.Seed),
		events:       NewEventBus(),
	}
	if opts.Stars > 0 {
		w.Stars = make([]Star, opts.Stars)
		for i := range w.Stars {
			w.Stars[i] = NewStar(w.rng, w.Width, w.Height)
		}
	}
	return w
}

func (w *World) Events() *EventBus { return w.events }

// Launch adds one rocket from the bottom edge.
func (w *World) Launch() *Rocket {
	rk := NewRocket(w.rng, w.Width, w.Height)
	w.Rockets = append(w.Rockets, rk)
	w.events.Emit(Event{Type: EventRocketLaunched, X: rk.X, Y: rk.Y, Pattern: rk.Pattern})
	return rk
}

// Step advances the display one tick: launches, stars, rockets, particles,
// then glitter. Invalid triggers are ignored.
func (w *World) Step(triggers []Trigger) {
	w.Tick++

	for _, t := range triggers {
		if t.Valid() {
			w.Launch()
		}
	}
	if w.launchChance > 0 && w.rng.Chance(w.launchChance) {
		w.Launch()
	}

	ms := float64(w.Tick) * 1000 / TicksPerSecond
	for i := range w.Stars {
		w.Stars[i].Update(ms)
	}

	live := w.Rockets[:0]
	for _, rk := range w.Rockets {
		if burst := rk.Update(w.rng); len(burst) > 0 {
			for _, p := range burst {
				w.Particles.Add(p)
			}
			w.events.Emit(Event{Type: EventRocketExploded, X: rk.X, Y: rk.Y, Pattern: rk.Pattern, Count: len(burst)})
		}
		if !rk.Exploded {
			live = append(live, rk)
		}
	}
	clear(w.Rockets[len(live):])
	w.Rockets = live

	w.Particles.Update()
	w.spawnGlitter()

	w.events.Emit(Event{Type: EventTick, Count: w.Particles.Len()})
}

// spawnGlitter rolls two independent chances per surviving spark: a burst
// of gold glitter once the spark is past 60% of its life, and a single pale
// sparkle at any age. New glitter is first updated next tick.
func (w *World) spawnGlitter() {
	w.glitter = w.glitter[:0]
	for _, p := range w.Particles.P {
		s, ok := p.(*Spark)
		if !ok {
			continue
		}
		if float64(s.Life) < float64(s.MaxLife)*GlitterLifeFrac && w.rng.Chance(GlitterChance) {
			if w.rng.Chance(GlitterBurstChance) {
				for range w.rng.Range(2, 5) {
					w.glitter = append(w.glitter, NewGlitter(w.rng, s.X, s.Y, Palette.Glitter))
				}
			}
		}
		if w.rng.Chance(SparkleChance) {
			w.glitter = append(w.glitter, NewGlitter(w.rng, s.X, s.Y, Palette.Sparkle))
		}
	}
	if len(w.glitter) == 0 {
		return
	}
	for _, g := range w.glitter {
		w.Particles.Add(g)
	}
	w.events.Emit(Event{Type: EventGlitter, Count: len(w.glitter)})
	clear(w.glitter)
}

// Idle reports whether nothing is in flight.
func (w *World) Idle() bool {
	return len(w.Rockets) == 0 && w.Particles.Len() == 0
}

// Render issues one frame: fade, stars, rockets, particles.
func (w *World) Render(s Surface) {
	s.Fade(FadeAlpha)
	for i := range w.Stars {
		w.Stars[i].Render(s)
	}
	for _, rk := range w.Rockets {
		rk.Render(s)
	}
	for _, p := range w.Particles.P {
		p.Render(s)
	}
}
