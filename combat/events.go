package combat

// EventType defines the kind of combat notification.
type EventType string

const (
	EventDamaged          EventType = "damaged"
	EventPostureBroken    EventType = "posture_broken"
	EventPostureRecovered EventType = "posture_recovered"
	EventDied             EventType = "died"
)

// Event is emitted by a vitals engine. Fire-and-forget: handlers must not
// block and the engine never waits on them.
type Event struct {
	Type     EventType
	Payload  Payload
	Overkill bool
}

// EventHandler handles combat events.
type EventHandler func(evt Event)

// EventEmitter sends combat events to a registered handler list.
type EventEmitter struct {
	Handlers []EventHandler
}

func (e *EventEmitter) Subscribe(h EventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

func (e *EventEmitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
