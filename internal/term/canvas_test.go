package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireworks/internal/sim"
)

var orange = sim.RGB{R: 200, G: 100, B: 50}

func TestCanvasStartsBlack(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	pw, ph := c.Size()
	assert.Equal(t, 10, pw)
	assert.Equal(t, 10, ph)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			require.Equal(t, sim.RGB{}, c.At(x, y))
		}
	}
	assert.Equal(t, sim.RGB{}, c.At(-1, 0))
	assert.Equal(t, sim.RGB{}, c.At(0, 10))
}

func TestCanvasTinyCircleLightsCentrePixel(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Circle(55, 55, 0.1, orange, 255)
	assert.Equal(t, orange, c.At(5, 5))
	assert.Equal(t, sim.RGB{}, c.At(4, 5))
	assert.Equal(t, sim.RGB{}, c.At(5, 6))
}

func TestCanvasCircleCoverage(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Circle(50, 50, 20, orange, 255)
	assert.Equal(t, orange, c.At(5, 5))
	assert.Equal(t, orange, c.At(3, 5))
	assert.Equal(t, sim.RGB{}, c.At(2, 5))
	assert.Equal(t, sim.RGB{}, c.At(8, 5))
}

func TestCanvasAlphaBlend(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Circle(55, 55, 0.1, orange, 128)
	assert.Equal(t, sim.RGB{R: 100, G: 50, B: 25}, c.At(5, 5))

	c.Circle(55, 55, 0.1, orange, 0)
	assert.Equal(t, sim.RGB{R: 100, G: 50, B: 25}, c.At(5, 5))
}

func TestCanvasFade(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Circle(55, 55, 0.1, orange, 255)
	c.Fade(51)
	assert.Equal(t, sim.RGB{R: 160, G: 80, B: 40}, c.At(5, 5))
	c.Fade(255)
	assert.Equal(t, sim.RGB{}, c.At(5, 5))
}

func TestCanvasIgnoresOffscreenCircles(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	assert.NotPanics(t, func() {
		c.Circle(-100, -100, 5, orange, 255)
		c.Circle(1e6, 50, 5, orange, 255)
	})
	pw, ph := c.Size()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			require.Equal(t, sim.RGB{}, c.At(x, y))
		}
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Circle(55, 55, 0.1, orange, 255)
	c.Resize(20, 10)
	pw, ph := c.Size()
	assert.Equal(t, 20, pw)
	assert.Equal(t, 20, ph)
	assert.Equal(t, sim.RGB{}, c.At(11, 11))

	c.Resize(0, 0)
	assert.NotPanics(t, func() { c.Circle(50, 50, 5, orange, 255) })
}

func TestCanvasToWorld(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	p := c.ToWorld(5, 2)
	assert.InDelta(t, 55, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)
}

func TestCanvasBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	c := NewCanvas(10, 5, 100, 100)
	c.Circle(55, 55, 0.1, orange, 255) // bottom pixel of cell (5, 2)
	c.Blit(screen)

	mainc, _, style, _ := screen.GetContent(5, 2)
	assert.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(200, 100, 50), bg)
}
