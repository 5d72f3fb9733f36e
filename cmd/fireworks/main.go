// Command fireworks runs the fireworks display in a desktop window or a
// terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"fireworks/internal/config"
	"fireworks/internal/game"
	"fireworks/internal/logging"
	"fireworks/internal/sim"
	"fireworks/internal/telemetry"
	"fireworks/internal/term"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	frontend := flag.String("frontend", "", "override the configured frontend (desktop or terminal)")
	flag.Parse()

	if err := run(*configDir, *frontend); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, frontend string) error {
	settings, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if frontend != "" {
		settings.Frontend = frontend
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	var logFile io.Writer
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}
	// The terminal frontend owns stdout; its logs go to the file only.
	var console io.Writer = os.Stdout
	if settings.Frontend == config.FrontendTerminal {
		console = nil
	}
	log := logging.Setup(console, logFile, settings.LogLevel)

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts := sim.DefaultOptions(seed)
	opts.MaxParticles = settings.Sim.MaxParticles
	world := sim.NewWorld(opts)
	log.Info().Uint64("seed", seed).Str("frontend", settings.Frontend).Msg("Display created")

	metrics, err := telemetry.New(telemetry.Provider(settings.Telemetry.Enabled), world)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := metrics.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to stop telemetry")
		}
	}()

	logEvents(world.Events(), logging.Sampled(log))

	if settings.Audio.Enabled {
		sound, err := game.NewAudioSystem(settings.Audio.Volume, log)
		if err != nil {
			log.Warn().Err(err).Msg("Audio init failed, continuing without sound")
		} else {
			sound.Attach(world.Events())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch settings.Frontend {
	case config.FrontendTerminal:
		return runTerminal(ctx, world, log)
	default:
		return game.RunDesktop(ctx, game.DesktopOptions{
			Title:  settings.Window.Title,
			Width:  settings.Window.Width,
			Height: settings.Window.Height,
		}, world, log)
	}
}

func runTerminal(ctx context.Context, world *sim.World, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return term.New(screen, world, log).Run(ctx)
}

// logEvents traces rocket activity. Bursts happen several times a second,
// so the logger should be sampled.
func logEvents(bus *sim.EventBus, log zerolog.Logger) {
	bus.Subscribe(sim.EventRocketLaunched, func(e sim.Event) {
		log.Debug().Float64("x", e.X).Stringer("pattern", e.Pattern).Msg("Rocket launched")
	})
	bus.Subscribe(sim.EventRocketExploded, func(e sim.Event) {
		log.Debug().Float64("x", e.X).Float64("y", e.Y).
			Stringer("pattern", e.Pattern).Int("particles", e.Count).Msg("Rocket exploded")
	})
}
