package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"fireworks/internal/sim"
)

const instrumentationName = "fireworks/internal/telemetry"

// Metrics holds the display's instruments.
type Metrics struct {
	launched metric.Int64Counter
	exploded metric.Int64Counter
	glitter  metric.Int64Counter
	live     metric.Int64ObservableGauge

	// liveCount is written on the simulation goroutine and read by the
	// metric reader.
	liveCount atomic.Int64

	reg metric.Registration
}

// Provider returns the global meter provider when enabled, a noop one
// otherwise.
func Provider(enabled bool) metric.MeterProvider {
	if !enabled {
		return noop.NewMeterProvider()
	}
	return otel.GetMeterProvider()
}

// New registers the instruments on mp and subscribes them to w's events.
// Call Close to stop observing.
func New(mp metric.MeterProvider, w *sim.World) (*Metrics, error) {
	meter := mp.Meter(instrumentationName)

	m := &Metrics{}
	var err error
	if m.launched, err = meter.Int64Counter("fireworks.rockets.launched",
		metric.WithDescription("Rockets launched")); err != nil {
		return nil, fmt.Errorf("launched counter: %w", err)
	}
	if m.exploded, err = meter.Int64Counter("fireworks.rockets.exploded",
		metric.WithDescription("Rockets exploded, by burst pattern")); err != nil {
		return nil, fmt.Errorf("exploded counter: %w", err)
	}
	if m.glitter, err = meter.Int64Counter("fireworks.particles.glitter",
		metric.WithDescription("Glitter particles shed by sparks")); err != nil {
		return nil, fmt.Errorf("glitter counter: %w", err)
	}
	if m.live, err = meter.Int64ObservableGauge("fireworks.particles.live",
		metric.WithDescription("Free particles in the pool")); err != nil {
		return nil, fmt.Errorf("live gauge: %w", err)
	}

	m.reg, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(m.live, m.liveCount.Load())
		return nil
	}, m.live)
	if err != nil {
		return nil, fmt.Errorf("register live gauge: %w", err)
	}

	m.attach(w.Events())
	return m, nil
}

func (m *Metrics) attach(bus *sim.EventBus) {
	ctx := context.Background()
	bus.Subscribe(sim.EventRocketLaunched, func(sim.Event) {
		m.launched.Add(ctx, 1)
	})
	bus.Subscribe(sim.EventRocketExploded, func(e sim.Event) {
		m.exploded.Add(ctx, 1, metric.WithAttributes(attribute.String("pattern", e.Pattern.String())))
	})
	bus.Subscribe(sim.EventGlitter, func(e sim.Event) {
		m.glitter.Add(ctx, int64(e.Count))
	})
	bus.Subscribe(sim.EventTick, func(e sim.Event) {
		m.liveCount.Store(int64(e.Count))
	})
}

func (m *Metrics) Close() error {
	if m.reg == nil {
		return nil
	}
	return m.reg.Unregister()
}
