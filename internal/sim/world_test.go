package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietWorld(seed uint64) *World {
	opts := DefaultOptions(seed)
	opts.LaunchChance = 0
	return NewWorld(opts)
}

func TestWorldDrainsAfterSingleRocket(t *testing.T) {
	for seed := range uint64(8) {
		w := quietWorld(seed)
		w.Launch()

		peak := 0
		for range 1000 {
			w.Step(nil)
			peak = max(peak, w.Particles.Len())
		}
		assert.Positive(t, peak, "seed %d never exploded", seed)
		assert.True(t, w.Idle(), "seed %d left %d rockets, %d particles", seed, len(w.Rockets), w.Particles.Len())
	}
}

func TestTriggersLaunchAndMalformedAreIgnored(t *testing.T) {
	w := quietWorld(1)
	w.Step([]Trigger{{X: math.NaN(), Y: 3}, {X: 1, Y: math.Inf(1)}})
	assert.Empty(t, w.Rockets)

	w.Step([]Trigger{{X: 10, Y: 20}, {X: 30, Y: 40}})
	assert.Len(t, w.Rockets, 2)
	assert.Equal(t, uint64(2), w.Tick)
}

func TestExplodedRocketsLeaveActiveSet(t *testing.T) {
	w := quietWorld(4)
	rk := w.Launch()
	rk.ExplodeHeight = rk.Y

	w.Step(nil)
	assert.Empty(t, w.Rockets)
	assert.NotZero(t, w.Particles.Len())
}

func TestSameSeedSameDisplay(t *testing.T) {
	a := NewWorld(DefaultOptions(77))
	b := NewWorld(DefaultOptions(77))
	for range 400 {
		a.Step(nil)
		b.Step(nil)
	}
	require.Equal(t, len(a.Rockets), len(b.Rockets))
	require.Equal(t, a.Particles.Len(), b.Particles.Len())
	for i := range a.Particles.P {
		assert.Equal(t, *a.Particles.P[i].Base(), *b.Particles.P[i].Base())
	}
}

func TestParticleCapOverwrites(t *testing.T) {
	opts := DefaultOptions(5)
	opts.LaunchChance = 0
	opts.MaxParticles = 50
	w := NewWorld(opts)
	for range 3 {
		w.Launch().ExplodeHeight = WorldHeight
	}
	w.Step(nil)
	assert.LessOrEqual(t, w.Particles.Len(), 50)
	assert.Positive(t, w.Particles.Len())
}

func TestGlitterComesFromSparksOnly(t *testing.T) {
	w := quietWorld(6)
	r := NewRand(6)
	for range 1000 {
		s := NewSpark(r, 10, 10, RGB{R: 255})
		s.Life = 10
		w.Particles.Add(s)
		w.Particles.Add(NewGlitter(r, 20, 20, RGB{B: 1}))
	}

	w.spawnGlitter()

	gold, pale := 0, 0
	for _, p := range w.Particles.P[2000:] {
		g, ok := p.(*Glitter)
		require.True(t, ok)
		assert.Equal(t, 10.0, g.X, "glitter spawns at its spark")
		switch g.InitCol {
		case Palette.Glitter:
			gold++
		case Palette.Sparkle:
			pale++
		default:
			t.Fatalf("unexpected glitter colour %+v", g.InitCol)
		}
	}
	assert.Positive(t, gold)
	assert.Positive(t, pale)
}

func TestYoungSparksOnlySparkle(t *testing.T) {
	w := quietWorld(8)
	r := NewRand(8)
	for range 2000 {
		w.Particles.Add(NewSpark(r, 0, 0, RGB{G: 255}))
	}
	w.spawnGlitter()
	for _, p := range w.Particles.P[2000:] {
		assert.Equal(t, Palette.Sparkle, p.Base().InitCol)
	}
	assert.Greater(t, w.Particles.Len(), 2000)
}

func TestEventsFollowTheDisplay(t *testing.T) {
	w := quietWorld(2)
	var launched, exploded, burst int
	w.Events().Subscribe(EventRocketLaunched, func(Event) { launched++ })
	w.Events().Subscribe(EventRocketExploded, func(e Event) {
		exploded++
		burst += e.Count
	})

	w.Launch()
	w.Launch()
	for range 300 {
		w.Step(nil)
	}
	assert.Equal(t, 2, launched)
	assert.Equal(t, 2, exploded)
	assert.Positive(t, burst)
}

func TestTickEventReportsLiveParticles(t *testing.T) {
	w := quietWorld(4)
	ticks, last := 0, -1
	w.Events().Subscribe(EventTick, func(e Event) {
		ticks++
		last = e.Count
	})

	w.Launch()
	for range 200 {
		w.Step(nil)
		require.Equal(t, w.Particles.Len(), last)
	}
	assert.Equal(t, 200, ticks)
}

func TestRenderOrder(t *testing.T) {
	w := quietWorld(10)
	w.Launch()
	for range 5 {
		w.Step(nil)
	}
	w.Particles.Add(NewGlitter(NewRand(1), 1, 2, Palette.Glitter))

	var rec Recorder
	w.Render(&rec)

	require.NotEmpty(t, rec.Calls)
	assert.True(t, rec.Calls[0].Fade)
	assert.Equal(t, uint8(FadeAlpha), rec.Calls[0].Alpha)

	stars := rec.Calls[1 : 1+StarCount]
	for i, c := range stars {
		assert.Equal(t, w.Stars[i].X, c.X)
	}
	last := rec.Calls[len(rec.Calls)-1]
	assert.Equal(t, Palette.Glitter, last.Col)
	head := rec.Calls[len(rec.Calls)-2]
	assert.Equal(t, float64(RocketRadius), head.Radius)
}
