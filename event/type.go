package event

// EventType identifies a domain event
type EventType uint16

const (
	EventNone EventType = iota

	// EventConsumption fires when a mover eats the occupant of its
	// destination cell
	EventConsumption

	// EventGrowth fires when a consumption grants a body segment
	EventGrowth

	// EventBlockedMove fires when a move aborts against a non-edible
	// occupant
	EventBlockedMove

	// EventEscape fires when a creature walks off the arena edge
	EventEscape
)

// GameEvent is one simulation event with its originating frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
