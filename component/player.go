package component

import "time"

// PlayerComponent marks the protagonist and buffers its next input
// direction. Next is a core direction index, -1 when no input is pending.
type PlayerComponent struct {
	InputPeriod    time.Duration
	InputRemaining time.Duration
	Next           int
}
