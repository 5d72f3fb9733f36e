package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"fireworks/internal/audio"
	"fireworks/internal/sim"
)

const formatFloat32LE = 0 // oto.FormatFloat32LE

// maxBooms limits simultaneous burst sounds; a finale of overlapping booms
// clips the speakers.
const maxBooms = 3

// Glitter is emitted every tick while sparks age. Only showers of at least
// crackleMinGlitter start a crackle, and at most one per crackleGap.
const (
	crackleMinGlitter = 8
	crackleGap        = 250 * time.Millisecond
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundLaunch SoundKind = iota
	SoundBoom
	SoundCrackle
)

func (k SoundKind) String() string {
	switch k {
	case SoundLaunch:
		return "launch"
	case SoundBoom:
		return "boom"
	case SoundCrackle:
		return "crackle"
	}
	return "unknown"
}

// AudioSystem plays procedural sound effects for simulation events.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    zerolog.Logger

	activeBooms atomic.Int32
	variant     atomic.Uint64
	lastCrackle time.Time // touched only from event handlers
}

// NewAudioSystem opens the output device. The context becomes usable once
// the device signals ready; sounds requested before that are dropped.
func NewAudioSystem(volume float64, log zerolog.Logger) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready, volume: volume, log: log}, nil
}

// Attach plays a sound for every launch, burst and glitter event on bus.
func (a *AudioSystem) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventRocketLaunched, func(sim.Event) {
		a.play(SoundLaunch, audio.Launch(a.variant.Add(1)), 0.35)
	})
	bus.Subscribe(sim.EventRocketExploded, func(e sim.Event) {
		a.play(SoundBoom, audio.ForPattern(e.Pattern, e.Count, a.variant.Add(1)), 1)
	})
	bus.Subscribe(sim.EventGlitter, func(e sim.Event) {
		if e.Count < crackleMinGlitter {
			return
		}
		now := time.Now()
		if now.Sub(a.lastCrackle) < crackleGap {
			return
		}
		a.lastCrackle = now
		a.play(SoundCrackle, audio.Crackle(e.Count, a.variant.Add(1)), 0.2)
	})
}

func (a *AudioSystem) play(kind SoundKind, samples []byte, gain float64) {
	if gain <= 0 || len(samples) == 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if kind == SoundBoom {
		if a.activeBooms.Load() >= maxBooms {
			a.log.Trace().Stringer("sound", kind).Msg("Dropped sound, too many playing")
			return
		}
		a.activeBooms.Add(1)
	}
	go func() {
		if kind == SoundBoom {
			defer a.activeBooms.Add(-1)
		}
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			a.log.Debug().Err(err).Stringer("sound", kind).Msg("Failed to close player")
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
