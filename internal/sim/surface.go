package sim

// Surface receives one frame of draw calls, in painter's order.
type Surface interface {
	// Fade darkens everything already drawn by a black overlay of the given alpha.
	Fade(alpha uint8)
	Circle(x, y, radius float64, col RGB, alpha uint8)
}

// DrawCall is one recorded Surface call. Fade calls have Fade set and no
// circle fields.
type DrawCall struct {
	Fade   bool
	X, Y   float64
	Radius float64
	Col    RGB
	Alpha  uint8
}

// Recorder is a Surface that keeps every call, for tests and debugging.
type Recorder struct {
	Calls []DrawCall
}

func (rc *Recorder) Fade(alpha uint8) {
	rc.Calls = append(rc.Calls, DrawCall{Fade: true, Alpha: alpha})
}

func (rc *Recorder) Circle(x, y, radius float64, col RGB, alpha uint8) {
	rc.Calls = append(rc.Calls, DrawCall{X: x, Y: y, Radius: radius, Col: col, Alpha: alpha})
}

func (rc *Recorder) Reset() { rc.Calls = rc.Calls[:0] }
