package sim

// Fixed-step timing for front ends driven by a wall clock.
const (
	TickDT       = 1.0 / TicksPerSecond
	MaxCatchUp   = 5    // ticks per frame before the clock is resynced
	MaxFrameTime = 0.25 // seconds; longer stalls are dropped
)

// FixedStep converts wall-clock frame times into whole simulation ticks.
type FixedStep struct {
	acc float64
}

// Advance adds a frame of dt seconds and returns how many ticks to run.
// A frame longer than MaxFrameTime counts as MaxFrameTime, and at most
// MaxCatchUp ticks are returned; time still owed after that is dropped.
func (c *FixedStep) Advance(dt float64) int {
	if !finite(dt) || dt < 0 {
		dt = 0
	}
	c.acc += min(dt, MaxFrameTime)

	n := 0
	for c.acc >= TickDT && n < MaxCatchUp {
		c.acc -= TickDT
		n++
	}
	if c.acc >= TickDT {
		c.acc = 0
	}
	return n
}

// Reset drops accumulated time, e.g. while the display is hidden.
func (c *FixedStep) Reset() { c.acc = 0 }

// Pending is the time accumulated towards the next tick, in seconds.
func (c *FixedStep) Pending() float64 { return c.acc }
