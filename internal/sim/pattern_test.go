package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sparksOf(t *testing.T, ps []Particle) []*Spark {
	t.Helper()
	out := make([]*Spark, 0, len(ps))
	for _, p := range ps {
		s, ok := p.(*Spark)
		require.True(t, ok, "burst produced a %s particle", p.Kind())
		out = append(out, s)
	}
	return out
}

func TestBurstSizesStayInRange(t *testing.T) {
	for _, p := range Patterns {
		t.Run(p.String(), func(t *testing.T) {
			lo, hi := p.CountRange()
			for seed := range uint64(40) {
				burst := p.Burst(NewRand(seed), 500, 300, RGB{R: 200, G: 150, B: 100}, nil)
				assert.GreaterOrEqual(t, len(burst), lo)
				assert.LessOrEqual(t, len(burst), hi)
				for _, s := range sparksOf(t, burst) {
					assert.Equal(t, s.MaxLife, s.Life)
					assert.Equal(t, 500.0, s.X)
					assert.Equal(t, 300.0, s.Y)
				}
			}
		})
	}
}

func TestHeartAlwaysEmitsTwoHundred(t *testing.T) {
	for seed := range uint64(20) {
		burst := PatternHeart.Burst(NewRand(seed), 0, 0, RGB{G: 255}, nil)
		require.Len(t, burst, 200)
		for _, s := range sparksOf(t, burst) {
			assert.Equal(t, Palette.Heart, s.InitCol)
			assert.True(t, s.MaxLife >= 100 && s.MaxLife <= 150)
		}
	}
}

func TestHeartVelocityFollowsCurve(t *testing.T) {
	hx, hy := heartVelocity(math.Pi / 2)
	assert.InDelta(t, 64.0, hx, 1e-9)
	assert.InDelta(t, -4.0*(0+5-0-1), hy, 1e-9)
}

func TestCracklingIsShortLived(t *testing.T) {
	burst := PatternCrackling.Burst(NewRand(5), 0, 0, RGB{R: 180}, nil)
	for _, s := range sparksOf(t, burst) {
		assert.True(t, s.MaxLife >= 30 && s.MaxLife <= 60)
		assert.Equal(t, RGB{R: 180}, s.InitCol)
	}
}

func TestShellSubBurstsShareDirection(t *testing.T) {
	for seed := range uint64(25) {
		burst := sparksOf(t, PatternShell.Burst(NewRand(seed), 0, 0, RGB{}, nil))

		groups := map[RGB][]*Spark{}
		for _, s := range burst {
			groups[s.InitCol] = append(groups[s.InitCol], s)
		}
		require.GreaterOrEqual(t, len(groups), 3)
		require.LessOrEqual(t, len(groups), 5)

		total := 0
		for col, g := range groups {
			assert.Contains(t, Palette.Shells[:], col)
			assert.GreaterOrEqual(t, len(g), 30)
			assert.LessOrEqual(t, len(g), 50)
			total += len(g)

			minX, maxX := math.Inf(1), math.Inf(-1)
			minY, maxY := math.Inf(1), math.Inf(-1)
			for _, s := range g {
				minX, maxX = math.Min(minX, s.VX), math.Max(maxX, s.VX)
				minY, maxY = math.Min(minY, s.VY), math.Max(maxY, s.VY)
			}
			// Jitter is at most ±1 per axis around a shared base.
			assert.LessOrEqual(t, maxX-minX, 2.0)
			assert.LessOrEqual(t, maxY-minY, 2.0)
		}
		assert.Len(t, burst, total)
	}
}

func TestRingSharesOneSpeed(t *testing.T) {
	burst := sparksOf(t, PatternRing.Burst(NewRand(17), 0, 0, RGB{B: 200}, nil))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range burst {
		spd := math.Hypot(s.VX, s.VY)
		lo, hi = math.Min(lo, spd), math.Max(hi, spd)
	}
	assert.GreaterOrEqual(t, lo, 3-math.Sqrt2*0.5)
	assert.LessOrEqual(t, hi, 5+math.Sqrt2*0.5)
	assert.LessOrEqual(t, hi-lo, math.Sqrt2)
}

func TestTrailIsASlowCloud(t *testing.T) {
	burst := sparksOf(t, PatternTrail.Burst(NewRand(23), 0, 0, RGB{R: 90}, nil))
	spd0 := math.Hypot(burst[0].VX, burst[0].VY)
	assert.True(t, spd0 >= 0.5 && spd0 <= 1.5)
	for _, s := range burst {
		assert.InDelta(t, spd0, math.Hypot(s.VX, s.VY), 1e-9)
		assert.True(t, s.Radius >= 0.8 && s.Radius <= 1.5)
		assert.True(t, s.MaxLife >= 200 && s.MaxLife <= 300)
	}
}

func TestRandomPatternCoversAll(t *testing.T) {
	r := NewRand(1)
	seen := map[Pattern]bool{}
	for range 600 {
		seen[RandomPattern(r)] = true
	}
	assert.Len(t, seen, len(Patterns))
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "sphere", PatternSphere.String())
	assert.Equal(t, "trail", PatternTrail.String())
	assert.Equal(t, "pattern(42)", Pattern(42).String())
	assert.Nil(t, Pattern(42).Burst(NewRand(1), 0, 0, RGB{}, nil))
}
