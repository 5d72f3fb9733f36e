package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"fireworks/internal/sim"
)

// TickInterval paces the simulation at sim.TicksPerSecond.
const TickInterval = time.Second / sim.TicksPerSecond

// Frontend drives a world on a tcell screen. The caller owns the screen:
// it must Init it before Run and Fini it afterwards.
type Frontend struct {
	screen tcell.Screen
	world  *sim.World
	canvas *Canvas
	log    zerolog.Logger

	triggers  []sim.Trigger
	mouseDown bool
}

func New(screen tcell.Screen, world *sim.World, log zerolog.Logger) *Frontend {
	cols, rows := screen.Size()
	return &Frontend{
		screen: screen,
		world:  world,
		canvas: NewCanvas(cols, rows, world.Width, world.Height),
		log:    log,
	}
}

// Canvas exposes the pixel buffer the world renders into.
func (f *Frontend) Canvas() *Canvas { return f.canvas }

// Run steps and draws the world every tick until Escape, Ctrl-C or q is
// pressed, or ctx is cancelled. A left click launches a rocket.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	f.screen.HideCursor()
	f.screen.Clear()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	f.log.Info().Int("cols", f.canvas.cols).Int("rows", f.canvas.rows).Msg("Terminal display started")
	for {
		select {
		case <-ctx.Done():
			f.log.Info().Msg("Context cancelled, leaving terminal")
			return nil
		case ev := <-events:
			if f.handle(ev) {
				f.log.Info().Uint64("ticks", f.world.Tick).Msg("Terminal display stopped")
				return nil
			}
		case <-ticker.C:
			f.tick()
		}
	}
}

// handle applies one input event and reports whether to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !f.mouseDown {
			x, y := ev.Position()
			t := f.canvas.ToWorld(x, y)
			f.log.Debug().Float64("x", t.X).Float64("y", t.Y).Msg("Launch requested")
			f.triggers = append(f.triggers, t)
		}
		f.mouseDown = down
	case *tcell.EventResize:
		cols, rows := ev.Size()
		f.canvas.Resize(cols, rows)
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) tick() {
	f.world.Step(f.triggers)
	f.triggers = f.triggers[:0]
	f.world.Render(f.canvas)
	f.canvas.Blit(f.screen)
	f.screen.Show()
}
