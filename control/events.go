package control

// EventType defines the kind of locomotion notification.
type EventType string

const (
	EventJumped          EventType = "jumped"
	EventGroundedChanged EventType = "grounded_changed"
	EventRollChanged     EventType = "roll_changed"
	EventWallGrabChanged EventType = "wall_grab_changed"
	EventLadderChanged   EventType = "ladder_changed"
	EventRepositioned    EventType = "repositioned"
	EventToggledActive   EventType = "toggled_active"
)

// JumpVariant identifies which jump path fired.
type JumpVariant int

const (
	JumpGround JumpVariant = iota
	JumpCoyote
	JumpAir
	JumpWall
	JumpLadder
)

func (v JumpVariant) String() string {
	switch v {
	case JumpGround:
		return "ground"
	case JumpCoyote:
		return "coyote"
	case JumpAir:
		return "air"
	case JumpWall:
		return "wall"
	case JumpLadder:
		return "ladder"
	}
	return "unknown"
}

// Event is a locomotion notification record. Fire-and-forget and
// one-directional; the controller never waits on handlers.
type Event struct {
	Type EventType

	Variant     JumpVariant
	ImpactSpeed float64
	Direction   float64
	Grounded    bool
	Grabbing    bool
	OnLadder    bool
	Active      bool
}

// EventHandler handles locomotion events.
type EventHandler func(evt Event)

// EventEmitter sends locomotion events to a registered handler list.
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
