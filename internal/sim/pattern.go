package sim

import (
	"fmt"
	"math"
)

// Pattern selects the shape of a rocket's burst. It is chosen once, when the
// rocket is built.
type Pattern uint8

const (
	PatternSphere Pattern = iota
	PatternHeart
	PatternCrackling
	PatternShell
	PatternRing
	PatternTrail

	patternCount
)

// Patterns lists every burst pattern in declaration order.
var Patterns = [patternCount]Pattern{
	PatternSphere, PatternHeart, PatternCrackling, PatternShell, PatternRing, PatternTrail,
}

type burstFunc func(r *Rand, x, y float64, col RGB, out []Particle) []Particle

type patternSpec struct {
	name     string
	minCount int // bounds on burst size, for callers sizing buffers or checking output
	maxCount int
	burst    burstFunc
}

var patternTable = [patternCount]patternSpec{
	PatternSphere:    {"sphere", 150, 250, burstSphere},
	PatternHeart:     {"heart", heartCount, heartCount, burstHeart},
	PatternCrackling: {"crackling", 80, 120, burstCrackling},
	PatternShell:     {"shell", 3 * 30, 5 * 50, burstShell},
	PatternRing:      {"ring", 150, 250, burstRing},
	PatternTrail:     {"trail", 100, 150, burstTrail},
}

func (p Pattern) String() string {
	if p >= patternCount {
		return fmt.Sprintf("pattern(%d)", uint8(p))
	}
	return patternTable[p].name
}

// CountRange returns the smallest and largest burst the pattern can produce.
func (p Pattern) CountRange() (int, int) {
	if p >= patternCount {
		return 0, 0
	}
	s := patternTable[p]
	return s.minCount, s.maxCount
}

// Burst appends the pattern's particles, centred on (x, y), to out.
func (p Pattern) Burst(r *Rand, x, y float64, col RGB, out []Particle) []Particle {
	if p >= patternCount {
		return out
	}
	return patternTable[p].burst(r, x, y, col, out)
}

// RandomPattern picks uniformly over all patterns.
func RandomPattern(r *Rand) Pattern {
	return Patterns[r.Intn(int(patternCount))]
}

func burstSphere(r *Rand, x, y float64, col RGB, out []Particle) []Particle {
	for range r.Range(150, 250) {
		out = append(out, NewSpark(r, x, y, col))
	}
	return out
}

const (
	heartCount = 200
	heartScale = 4.0
)

// heartVelocity samples the parametric heart curve at t.
func heartVelocity(t float64) (float64, float64) {
	hx := heartScale * 16 * math.Pow(math.Sin(t), 3)
	hy := -heartScale * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return hx, hy
}

func burstHeart(r *Rand, x, y float64, _ RGB, out []Particle) []Particle {
	for range heartCount {
		hx, hy := heartVelocity(r.Angle())
		k := r.RangeF(0.1, 0.2)
		s := NewSpark(r, x, y, Palette.Heart)
		s.VX = hx * k
		s.VY = hy * k
		s.SetLifetime(r.Range(100, 150))
		out = append(out, s)
	}
	return out
}

func burstCrackling(r *Rand, x, y float64, col RGB, out []Particle) []Particle {
	for range r.Range(80, 120) {
		s := NewSpark(r, x, y, col)
		s.SetLifetime(r.Range(30, 60))
		out = append(out, s)
	}
	return out
}

func burstShell(r *Rand, x, y float64, _ RGB, out []Particle) []Particle {
	shells := r.Range(3, 5)
	colors := Palette.Shells
	r.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })

	for i := range shells {
		ang := 2*math.Pi/float64(shells)*float64(i) + r.RangeF(-0.5, 0.5)
		spd := r.RangeF(2, 4)
		col := colors[i%len(colors)]
		bx, by := spd*math.Cos(ang), spd*math.Sin(ang)
		for range r.Range(30, 50) {
			s := NewSpark(r, x, y, col)
			s.VX = bx + r.RangeF(-1, 1)
			s.VY = by + r.RangeF(-1, 1)
			out = append(out, s)
		}
	}
	return out
}

func burstRing(r *Rand, x, y float64, col RGB, out []Particle) []Particle {
	spd := r.RangeF(3, 5)
	for range r.Range(150, 250) {
		ang := r.Angle()
		s := NewSpark(r, x, y, col)
		s.VX = spd*math.Cos(ang) + r.RangeF(-0.5, 0.5)
		s.VY = spd*math.Sin(ang) + r.RangeF(-0.5, 0.5)
		out = append(out, s)
	}
	return out
}

func burstTrail(r *Rand, x, y float64, col RGB, out []Particle) []Particle {
	spd := r.RangeF(0.5, 1.5)
	for range r.Range(100, 150) {
		ang := r.Angle()
		s := NewSpark(r, x, y, col)
		s.SetLifetime(r.Range(200, 300))
		s.Radius = r.RangeF(0.8, 1.5)
		s.VX = spd * math.Cos(ang)
		s.VY = spd * math.Sin(ang)
		out = append(out, s)
	}
	return out
}
