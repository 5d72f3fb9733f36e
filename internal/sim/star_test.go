package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarBrightnessStaysInBand(t *testing.T) {
	r := NewRand(31)
	for range 100 {
		st := NewStar(r, WorldWidth, WorldHeight)
		lo := max(10, int(st.Base)/2)
		for ms := 0.0; ms < 5000; ms += 16.6 {
			st.Update(ms)
			if !st.Twinkles {
				assert.Equal(t, st.Base, st.Brightness)
				continue
			}
			assert.GreaterOrEqual(t, int(st.Brightness), lo)
			assert.LessOrEqual(t, st.Brightness, st.Base)
		}
	}
}

func TestStarRendersGrey(t *testing.T) {
	st := Star{X: 4, Y: 5, Size: 2, Base: 120, Brightness: 120}
	var rec Recorder
	st.Render(&rec)
	assert.Equal(t, []DrawCall{{X: 4, Y: 5, Radius: 2, Col: RGB{R: 120, G: 120, B: 120}, Alpha: 255}}, rec.Calls)
}
