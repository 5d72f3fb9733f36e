//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the night sky into an offscreen canvas that survives between
// frames, so each fade only darkens what is already there and moving
// particles leave trails. Present copies the canvas to the window.
type Renderer struct {
	// Fade program: full-canvas translucent quad.
	fadeProg   uint32
	fadeVAO    uint32
	fadeVBO    uint32
	fadeUAlpha int32

	// Circle program: round point sprites.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUWorld int32
	spUScale int32

	// Persistent canvas.
	canvasFBO uint32
	canvasTex uint32
	canvasW   int
	canvasH   int
}

func NewRenderer() (*Renderer, error) {
	fadeProg, err := linkProgram(fadeVertSrc, fadeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("fade program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(fadeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		fadeProg:   fadeProg,
		spriteProg: spriteProg,
	}

	// Fade VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var fVAO, fVBO uint32
	gl.GenVertexArrays(1, &fVAO)
	gl.GenBuffers(1, &fVBO)
	gl.BindVertexArray(fVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, fVBO)
	quadVerts := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.fadeVAO, r.fadeVBO = fVAO, fVBO

	gl.UseProgram(fadeProg)
	r.fadeUAlpha = gl.GetUniformLocation(fadeProg, gl.Str("uAlpha\x00"))

	// Sprite VAO/VBO: [x, y, radius, r, g, b, a] per circle.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)
	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteBatch*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aRadius
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO, r.spriteVBO = sVAO, sVBO

	gl.UseProgram(spriteProg)
	r.spUWorld = gl.GetUniformLocation(spriteProg, gl.Str("uWorld\x00"))
	r.spUScale = gl.GetUniformLocation(spriteProg, gl.Str("uScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	r.releaseCanvas()
	for _, id := range []uint32{r.fadeVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.fadeVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.fadeProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) releaseCanvas() {
	if r.canvasFBO != 0 {
		gl.DeleteFramebuffers(1, &r.canvasFBO)
		r.canvasFBO = 0
	}
	if r.canvasTex != 0 {
		gl.DeleteTextures(1, &r.canvasTex)
		r.canvasTex = 0
	}
	r.canvasW, r.canvasH = 0, 0
}

// ensureCanvas (re)creates the canvas when the framebuffer size changes.
// A new canvas starts black.
func (r *Renderer) ensureCanvas(fbW, fbH int) error {
	if r.canvasFBO != 0 && r.canvasW == fbW && r.canvasH == fbH {
		return nil
	}
	r.releaseCanvas()

	gl.GenTextures(1, &r.canvasTex)
	gl.BindTexture(gl.TEXTURE_2D, r.canvasTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(fbW), int32(fbH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &r.canvasFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.canvasFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.canvasTex, 0)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		r.releaseCanvas()
		return fmt.Errorf("canvas framebuffer incomplete: 0x%x", status)
	}
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	r.canvasW, r.canvasH = fbW, fbH
	return nil
}

// BeginFrame directs drawing at the canvas.
func (r *Renderer) BeginFrame(fbW, fbH int) error {
	if err := r.ensureCanvas(fbW, fbH); err != nil {
		return err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.canvasFBO)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	return nil
}

// Fade darkens the canvas by blending black at alpha/255.
func (r *Renderer) Fade(alpha uint8) {
	gl.UseProgram(r.fadeProg)
	gl.BindVertexArray(r.fadeVAO)
	gl.Uniform1f(r.fadeUAlpha, float32(alpha)/255.0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)
}

// Present copies the canvas to the window's framebuffer.
func (r *Renderer) Present(fbW, fbH int) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.canvasFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, int32(r.canvasW), int32(r.canvasH),
		0, 0, int32(fbW), int32(fbH),
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
