package game

import "github.com/google/uuid"

type EventType int

const (
	EventCubeEaten EventType = iota
	EventBounce
	EventCubeBurst
	EventFieldGenerated
)

func (t EventType) String() string {
	switch t {
	case EventCubeEaten:
		return "cube-eaten"
	case EventBounce:
		return "bounce"
	case EventCubeBurst:
		return "cube-burst"
	case EventFieldGenerated:
		return "field-generated"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Tick   uint64
	X, Y   float64
	CubeID uuid.UUID
	Size   float64 // cube size, or player radius for EventCubeEaten
	Count  int     // cubes in the field for EventFieldGenerated
}

type EventHandler func(Event)

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

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for _, t := range []EventType{EventCubeEaten, EventBounce, EventCubeBurst, EventFieldGenerated} {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
