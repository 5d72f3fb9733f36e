package sim

import "math"

// Star is a fixed background point whose brightness may oscillate.
type Star struct {
	X, Y       float64
	Size       float64
	Base       uint8
	Brightness uint8

	Twinkles     bool
	TwinkleSpeed float64 // radians per millisecond
	TwinklePhase float64
}

func NewStar(r *Rand, width, height int) Star {
	base := uint8(r.Range(100, 255))
	return Star{
		X:            float64(r.Range(0, width)),
		Y:            float64(r.Range(0, height)),
		Size:         float64(r.Range(1, 3)),
		Base:         base,
		Brightness:   base,
		TwinkleSpeed: r.RangeF(0.01, 0.05),
		TwinklePhase: r.RangeF(0, 2*math.Pi),
		Twinkles:     r.Intn(3) != 0,
	}
}

// Update recomputes brightness for elapsed simulated milliseconds.
func (st *Star) Update(ms float64) {
	if !st.Twinkles {
		return
	}
	f := (math.Sin(ms*st.TwinkleSpeed+st.TwinklePhase) + 1) / 2
	b := int(float64(st.Base) * (0.5 + f*0.5))
	if b < 10 {
		b = 10
	}
	st.Brightness = clampU8(b)
}

func (st *Star) Render(s Surface) {
	s.Circle(st.X, st.Y, st.Size, grey(st.Brightness), 255)
}
