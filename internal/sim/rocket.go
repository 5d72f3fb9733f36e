package sim

// Rocket climbs from the bottom edge shedding embers until it reaches its
// apex or its explosion height, then bursts exactly once.
type Rocket struct {
	X, Y     float64
	VY       float64
	Col      RGB
	TrailCol RGB

	Pattern       Pattern
	ExplodeHeight float64
	Exploded      bool

	Embers []*Ember
}

// NewRocket launches from a random column in the middle half of the bottom
// edge of a width×height world.
func NewRocket(r *Rand, width, height int) *Rocket {
	col := RGB{
		R: uint8(r.Range(100, 255)),
		G: uint8(r.Range(100, 255)),
		B: uint8(r.Range(100, 255)),
	}
	return &Rocket{
		X:             float64(r.Range(width/4, 3*width/4)),
		Y:             float64(height),
		VY:            r.RangeF(-18, -10),
		Col:           col,
		TrailCol:      col.Half(),
		Pattern:       RandomPattern(r),
		ExplodeHeight: float64(r.Range(height/3, height/2)),
	}
}

// Update advances the rocket one tick. The returned slice holds the burst and
// is non-empty only on the tick the rocket explodes.
func (rk *Rocket) Update(r *Rand) []Particle {
	if rk.Exploded {
		return nil
	}

	rk.Y += rk.VY
	rk.VY += RocketGravity

	if r.Chance(EmberChance) {
		rk.Embers = append(rk.Embers, NewEmber(r, rk.X, rk.Y+float64(r.Range(5, 15)), rk.TrailCol))
	}

	live := rk.Embers[:0]
	for _, e := range rk.Embers {
		e.Update()
		if !e.Expired() {
			live = append(live, e)
		}
	}
	clear(rk.Embers[len(live):])
	rk.Embers = live

	if rk.VY >= 0 || rk.Y <= rk.ExplodeHeight {
		return rk.Explode(r)
	}
	return nil
}

// Explode marks the rocket spent and returns its burst. A second call
// returns nil.
func (rk *Rocket) Explode(r *Rand) []Particle {
	if rk.Exploded {
		return nil
	}
	rk.Exploded = true
	rk.Embers = nil
	_, n := rk.Pattern.CountRange()
	return rk.Pattern.Burst(r, rk.X, rk.Y, rk.Col, make([]Particle, 0, n))
}

func (rk *Rocket) Render(s Surface) {
	if rk.Exploded {
		return
	}
	for _, e := range rk.Embers {
		e.Render(s)
	}
	s.Circle(rk.X, rk.Y, RocketRadius, rk.Col, 255)
}
