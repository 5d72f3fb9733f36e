// Package term renders the fireworks display in a terminal with tcell.
//
// Each character cell shows two vertically stacked pixels using the upper
// half block: the foreground colours the top pixel, the background the
// bottom one.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"fireworks/internal/sim"
)

const halfBlock = '▀'

type pixel struct{ r, g, b float64 }

// Canvas is a persistent pixel buffer implementing sim.Surface. Like a
// window that is never cleared, it only changes through Fade and Circle.
type Canvas struct {
	cols, rows int
	pw, ph     int // pixel grid, two pixels per cell vertically
	sx, sy     float64
	worldW     float64
	worldH     float64
	pix        []pixel
}

// NewCanvas maps a worldW x worldH world onto cols x rows cells.
func NewCanvas(cols, rows, worldW, worldH int) *Canvas {
	c := &Canvas{worldW: float64(worldW), worldH: float64(worldH)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid. The canvas starts over black.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.pw, c.ph = c.cols, c.rows*2
	c.sx = float64(c.pw) / c.worldW
	c.sy = float64(c.ph) / c.worldH
	c.pix = make([]pixel, c.pw*c.ph)
}

// Size returns the pixel grid dimensions.
func (c *Canvas) Size() (int, int) { return c.pw, c.ph }

func (c *Canvas) Fade(alpha uint8) {
	k := 1 - float64(alpha)/255
	for i := range c.pix {
		c.pix[i].r *= k
		c.pix[i].g *= k
		c.pix[i].b *= k
	}
}

// Circle blends every pixel whose centre lies inside the circle. Circles
// smaller than a pixel still light the pixel containing their centre.
func (c *Canvas) Circle(x, y, radius float64, col sim.RGB, alpha uint8) {
	if alpha == 0 || len(c.pix) == 0 {
		return
	}
	cx, cy := x*c.sx, y*c.sy
	rx := math.Max(radius*c.sx, 0.5)
	ry := math.Max(radius*c.sy, 0.5)
	hx, hy := int(math.Floor(cx)), int(math.Floor(cy))

	a := float64(alpha) / 255
	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for j := max(y0, 0); j <= min(y1, c.ph-1); j++ {
		dy := (float64(j) + 0.5 - cy) / ry
		for i := max(x0, 0); i <= min(x1, c.pw-1); i++ {
			dx := (float64(i) + 0.5 - cx) / rx
			if dx*dx+dy*dy > 1 && (i != hx || j != hy) {
				continue
			}
			p := &c.pix[j*c.pw+i]
			p.r += (float64(col.R) - p.r) * a
			p.g += (float64(col.G) - p.g) * a
			p.b += (float64(col.B) - p.b) * a
		}
	}
}

// At returns the colour of pixel (px, py); out-of-range pixels are black.
func (c *Canvas) At(px, py int) sim.RGB {
	if px < 0 || py < 0 || px >= c.pw || py >= c.ph {
		return sim.RGB{}
	}
	p := c.pix[py*c.pw+px]
	return sim.RGB{R: channel(p.r), G: channel(p.g), B: channel(p.b)}
}

// ToWorld converts a cell position to world coordinates, at the cell centre.
func (c *Canvas) ToWorld(col, row int) sim.Trigger {
	if c.sx == 0 || c.sy == 0 {
		return sim.Trigger{X: c.worldW / 2, Y: c.worldH / 2}
	}
	return sim.Trigger{
		X: (float64(col) + 0.5) / c.sx,
		Y: (float64(row)*2 + 1) / c.sy,
	}
}

// Blit copies the canvas onto s.
func (c *Canvas) Blit(s tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(c.At(col, row*2))).
				Background(cellColor(c.At(col, row*2+1)))
			s.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func cellColor(c sim.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
