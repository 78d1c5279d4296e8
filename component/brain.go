package component

import (
	"time"

	"github.com/lixenwraith/mongoose/core"
)

// TargetKind discriminates what an agent is pursuing
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetEntity
)

// Target is a fixed cell or a tracked entity an agent is pursuing
type Target struct {
	Kind   TargetKind
	Cell   core.Cell
	Entity core.Entity
}

// BrainComponent drives autonomous creatures: two independent countdown
// cadences, the committed target and the planned route. Countdowns are
// plain durations decremented by the tick delta.
type BrainComponent struct {
	MovePeriod    time.Duration
	PlanPeriod    time.Duration
	MoveRemaining time.Duration
	PlanRemaining time.Duration

	// Route is the remaining waypoints, next step first. Cleared on
	// blockage, on target loss and on arrival.
	Route []core.Cell

	Target Target
}
