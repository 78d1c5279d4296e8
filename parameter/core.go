package parameter

import "time"

// Game loop timing
const (
	// TickInterval is the fixed simulation step (clock tick)
	TickInterval = 50 * time.Millisecond
)

// Event queue sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = EventQueueSize - 1
)
