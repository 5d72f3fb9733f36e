package sim

type EventType int

const (
	EventRocketLaunched EventType = iota
	EventRocketExploded
	EventGlitter
	EventTick // end of Step; Count is the live particle count
)

type Event struct {
	Type    EventType
	X, Y    float64
	Pattern Pattern
	Count   int // burst size, glitter spawned or live particles
}

type EventHandler func(Event)

// EventBus fans simulation events out to subscribers synchronously.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
