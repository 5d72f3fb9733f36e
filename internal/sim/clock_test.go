package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepWholeTicks(t *testing.T) {
	var c FixedStep
	assert.Equal(t, 0, c.Advance(TickDT/2))
	assert.Equal(t, 1, c.Advance(TickDT/2+1e-9))
	assert.Equal(t, 2, c.Advance(2*TickDT))
	assert.Less(t, c.Pending(), TickDT)
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	var c FixedStep
	assert.Equal(t, MaxCatchUp, c.Advance(10))
	assert.Zero(t, c.Pending(), "owed ticks beyond the cap are dropped")
	assert.Equal(t, 0, c.Advance(0))
}

func TestFixedStepIgnoresBadFrames(t *testing.T) {
	var c FixedStep
	assert.Equal(t, 0, c.Advance(-1))
	assert.Equal(t, 0, c.Advance(math.NaN()))
	assert.Equal(t, 0, c.Advance(math.Inf(1)))
	assert.Zero(t, c.Pending())
}

func TestFixedStepResetAfterHiddenStretch(t *testing.T) {
	var c FixedStep
	c.Advance(TickDT * 0.9)
	c.Reset()
	assert.Zero(t, c.Pending())
	// One short frame after being hidden must not burst out a tick.
	assert.Equal(t, 0, c.Advance(TickDT*0.5))
}
