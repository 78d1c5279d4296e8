package event

import (
	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
)

// ConsumptionPayload reports an eater consuming a victim. The victim and
// every cell of its body are already freed when this is observed; the
// payload is the scoreboard/telemetry record.
type ConsumptionPayload struct {
	Eater      core.Entity
	EaterKind  component.Kind
	Victim     core.Entity
	VictimKind component.Kind
	Cell       core.Cell
}

// GrowthPayload reports a body gaining one segment
type GrowthPayload struct {
	Agent core.Entity
	Kind  component.Kind
}

// BlockedMovePayload reports a move aborted against an occupied cell.
// The mover's route is cleared; replanning happens on its next cycle.
type BlockedMovePayload struct {
	Agent       core.Entity
	Kind        component.Kind
	Cell        core.Cell
	BlockerKind component.Kind
}

// EscapePayload reports a creature leaving the arena for good
type EscapePayload struct {
	Agent core.Entity
	Kind  component.Kind
}
