//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"fireworks/internal/sim"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorTrigger converts the cursor position to a launch trigger in world
// coordinates. The canvas stretches the world over the whole window.
func CursorTrigger(window *glfw.Window, worldW, worldH int) sim.Trigger {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return sim.Trigger{X: float64(worldW) / 2, Y: float64(worldH) / 2}
	}
	return sim.Trigger{
		X: cx / float64(winW) * float64(worldW),
		Y: cy / float64(winH) * float64(worldH),
	}
}
