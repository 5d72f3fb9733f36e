//go:build !android

package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"fireworks/internal/sim"
)

// spriteFloats is the sprite vertex layout: [x, y, radius, r, g, b, a].
const spriteFloats = 7

// DrawSprites renders an array of round point sprites with alpha blending.
// Coordinates and radii are in world units; worldW/worldH map onto the canvas.
func (r *Renderer) DrawSprites(buf []float32, worldW, worldH float64, fbW int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / spriteFloats
	if count > MaxSpriteBatch {
		count = MaxSpriteBatch
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUWorld, float32(worldW), float32(worldH))
	gl.Uniform1f(r.spUScale, float32(float64(fbW)/worldW))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// canvasSurface adapts the renderer to sim.Surface. Circles are batched and
// drawn in submission order; a fade flushes the pending batch first.
type canvasSurface struct {
	r      *Renderer
	buf    []float32
	worldW float64
	worldH float64
	fbW    int
}

func (s *canvasSurface) Fade(alpha uint8) {
	s.Flush()
	s.r.Fade(alpha)
}

func (s *canvasSurface) Circle(x, y, radius float64, col sim.RGB, alpha uint8) {
	s.buf = append(s.buf,
		float32(x), float32(y), float32(radius),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, float32(alpha)/255.0,
	)
	if len(s.buf) >= MaxSpriteBatch*spriteFloats {
		s.Flush()
	}
}

// Flush draws the pending circles.
func (s *canvasSurface) Flush() {
	s.r.DrawSprites(s.buf, s.worldW, s.worldH, s.fbW)
	s.buf = s.buf[:0]
}
