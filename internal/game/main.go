//go:build !android

package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"fireworks/internal/sim"
)

// DesktopOptions configures the window.
type DesktopOptions struct {
	Title  string
	Width  int
	Height int
}

func (o DesktopOptions) withDefaults() DesktopOptions {
	if o.Title == "" {
		o.Title = WindowTitle
	}
	if o.Width <= 0 {
		o.Width = WindowWidth
	}
	if o.Height <= 0 {
		o.Height = WindowHeight
	}
	return o
}

// RunDesktop opens a window and runs world until the window is closed,
// Escape is pressed or ctx is cancelled. The simulation advances in fixed
// ticks; each tick renders into the persistent canvas.
func RunDesktop(ctx context.Context, opts DesktopOptions, world *sim.World, log zerolog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	opts = opts.withDefaults()
	window, err := initWindow(opts)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Int("width", opts.Width).Int("height", opts.Height).Msg("Window opened")

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	surface := &canvasSurface{
		r:      rend,
		worldW: float64(world.Width),
		worldH: float64(world.Height),
	}
	input := NewInput()
	var triggers []sim.Trigger

	var clock sim.FixedStep
	last := glfw.GetTime()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			log.Info().Msg("Context cancelled, closing window")
			return nil
		}

		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		if input.JustClicked(window, glfw.MouseButtonLeft) {
			t := CursorTrigger(window, world.Width, world.Height)
			log.Debug().Float64("x", t.X).Float64("y", t.Y).Msg("Launch requested")
			triggers = append(triggers, t)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: sleep until something happens and keep the
			// simulation paused.
			glfw.WaitEventsTimeout(hiddenWait)
			clock.Reset()
			last = glfw.GetTime()
			continue
		}
		if err := rend.BeginFrame(fbW, fbH); err != nil {
			return err
		}
		surface.fbW = fbW

		steps := clock.Advance(dt)
		if steps == sim.MaxCatchUp {
			log.Trace().Float64("frame", dt).Msg("Simulation behind, dropping ticks")
		}
		for range steps {
			world.Step(triggers)
			triggers = triggers[:0]
			world.Render(surface)
			surface.Flush()
		}

		rend.Present(fbW, fbH)
		window.SwapBuffers()
	}
	log.Info().Uint64("ticks", world.Tick).Msg("Window closed")
	return nil
}
