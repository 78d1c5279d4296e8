package system

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/parameter"
)

// PlayerSystem steps the protagonist from buffered input. Unlike the AI
// creatures the mongoose never leaves the arena: moves over the edge are
// dropped at the border.
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(w *engine.World) engine.System {
	return &PlayerSystem{world: w}
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update(dt time.Duration) {
	w := s.world
	for _, e := range w.Components.Player.GetAllEntities() {
		pc, ok := w.Components.Player.GetComponent(e)
		if !ok {
			continue
		}

		if pc.InputRemaining > 0 {
			pc.InputRemaining -= dt
		}
		if pc.InputRemaining > 0 || pc.Next < 0 {
			w.Components.Player.SetComponent(e, pc)
			continue
		}

		dir := pc.Next
		pc.Next = -1

		seg, ok := w.Components.Segmented.GetComponent(e)
		if !ok {
			w.Components.Player.SetComponent(e, pc)
			continue
		}

		dest := seg.Head.Neighbor(dir)
		if !w.Arena.InBounds(dest) {
			// The protagonist stays on the board
			w.Components.Player.SetComponent(e, pc)
			continue
		}

		if advanceAgent(w, e, component.KindMongoose, dest) == stepMoved {
			// Throttle only accepted steps; a blocked press can retry
			// as soon as a fresh direction arrives
			pc.InputRemaining = pc.InputPeriod
		}
		w.Components.Player.SetComponent(e, pc)
	}
}
