package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Half returns the colour at half brightness (integer division per channel).
func (c RGB) Half() RGB {
	return RGB{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}

// Scale multiplies each channel by its factor and clamps to [0,255].
func (c RGB) Scale(kr, kg, kb float64) RGB {
	return RGB{
		R: clampU8(int(float64(c.R) * kr)),
		G: clampU8(int(float64(c.G) * kg)),
		B: clampU8(int(float64(c.B) * kb)),
	}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func grey(v uint8) RGB { return RGB{R: v, G: v, B: v} }

var Palette = struct {
	Heart   RGB
	Glitter RGB
	Sparkle RGB
	Shells  [6]RGB
}{
	Heart:   RGB{R: 255, G: 50, B: 50},
	Glitter: RGB{R: 255, G: 200, B: 0},
	Sparkle: RGB{R: 255, G: 255, B: 200},
	Shells: [6]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
		{R: 255, G: 0, B: 255},
		{R: 0, G: 255, B: 255},
	},
}
