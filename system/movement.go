package system

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/event"
	"github.com/lixenwraith/mongoose/parameter"
)

// interaction is what happens when a mover steps into an occupied cell
type interaction uint8

const (
	interactBlock interaction = iota
	interactConsume
)

// interactionTable maps (mover kind, destination kind) to an outcome.
// Missing pairs block, which also covers a creature's own body. The gaps
// are the current ruleset: a mongoose takes snakes but cannot yet defeat
// a cobra, and nothing preys on the mongoose.
var interactionTable = map[component.Kind]map[component.Kind]interaction{
	component.KindSnake: {
		component.KindBerry: interactConsume,
		component.KindMouse: interactConsume,
	},
	component.KindCobra: {
		component.KindBerry: interactConsume,
		component.KindMouse: interactConsume,
	},
	component.KindMongoose: {
		component.KindBerry: interactConsume,
		component.KindMouse: interactConsume,
		component.KindSnake: interactConsume,
	},
}

// resolveInteraction is the pure dispatch: no state is touched
func resolveInteraction(mover, dest component.Kind) interaction {
	if outcomes, ok := interactionTable[mover]; ok {
		if out, ok := outcomes[dest]; ok {
			return out
		}
	}
	return interactBlock
}

// stepOutcome classifies an attempted head move
type stepOutcome uint8

const (
	stepMoved stepOutcome = iota
	stepBlocked
)

// advanceAgent attempts to move an agent's head into dest, resolving any
// occupant there first. On a blocked destination nothing changes and the
// caller discards its route. On consumption the victim is despawned, its
// cells freed, and the shift runs with the tail-vacate suppressed so the
// body nets one segment.
func advanceAgent(w *engine.World, root core.Entity, kind component.Kind, dest core.Cell) stepOutcome {
	grow := false

	if occ, ok := w.Arena.OccupantAt(dest); ok {
		if occ.Entity == root || resolveInteraction(kind, occ.Kind) == interactBlock {
			w.Emit(event.EventBlockedMove, &event.BlockedMovePayload{
				Agent:       root,
				Kind:        kind,
				Cell:        dest,
				BlockerKind: occ.Kind,
			})
			return stepBlocked
		}

		consume(w, root, kind, occ, dest)
		grow = true
	}

	shiftBody(w, root, kind, dest, grow)

	if grow {
		w.Emit(event.EventGrowth, &event.GrowthPayload{Agent: root, Kind: kind})
	}
	return stepMoved
}

// consume removes the victim from the world before the mover's shift.
// Single-cell items free one cell; segmented victims are despawned whole,
// every cell of their body freed.
func consume(w *engine.World, eater core.Entity, eaterKind component.Kind, victim engine.Occupant, at core.Cell) {
	if w.Components.Segmented.HasEntity(victim.Entity) {
		w.DespawnAgent(victim.Entity)
	} else {
		w.DespawnItem(victim.Entity)
	}

	w.Emit(event.EventConsumption, &event.ConsumptionPayload{
		Eater:      eater,
		EaterKind:  eaterKind,
		Victim:     victim.Entity,
		VictimKind: victim.Kind,
		Cell:       at,
	})
}

// shiftBody propagates a head move through the chain, follow-the-leader:
// each segment takes the cell of the one ahead. The cell the old tail
// leaves behind is freed, unless this move grew the body, in which case a
// fresh segment is appended there instead.
func shiftBody(w *engine.World, root core.Entity, kind component.Kind, newHead core.Cell, grow bool) {
	seg, ok := w.Components.Segmented.GetComponent(root)
	if !ok {
		panic("movement: agent has no segmented body")
	}

	w.Arena.Set(newHead, engine.Occupant{Entity: root, Kind: kind})

	gap := newHead
	for _, s := range seg.Segments {
		pos, ok := w.Positions.GetComponent(s)
		if !ok {
			panic("movement: segment position missing")
		}
		w.Positions.SetComponent(s, component.At(gap))
		gap = pos.Cell()
	}

	if grow {
		tail := w.CreateEntity()
		w.Positions.SetComponent(tail, component.At(gap))
		seg.Segments = append(seg.Segments, tail)
		// gap stays occupied; the new tail owns it now
	} else {
		w.Arena.UnsetIfPresent(gap) // tolerant: off-grid tails were never recorded
	}

	seg.Head = newHead
	w.Components.Segmented.SetComponent(root, seg)
}

// MovementSystem advances creature brains along their routes on each
// movement cooldown fire
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(w *engine.World) engine.System {
	return &MovementSystem{world: w}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) Update(dt time.Duration) {
	w := s.world
	for _, e := range w.Components.Brain.GetAllEntities() {
		brain, ok := w.Components.Brain.GetComponent(e)
		if !ok {
			continue
		}

		brain.MoveRemaining -= dt
		if brain.MoveRemaining > 0 {
			w.Components.Brain.SetComponent(e, brain)
			continue
		}
		brain.MoveRemaining = brain.MovePeriod

		if len(brain.Route) == 0 {
			// Waiting for the next plan
			w.Components.Brain.SetComponent(e, brain)
			continue
		}

		next := brain.Route[0]
		brain.Route = brain.Route[1:]

		kind := w.KindOf(e)
		if advanceAgent(w, e, kind, next) == stepBlocked {
			// Abort the move entirely; replan on the next planning cycle
			brain.Route = nil
		}
		w.Components.Brain.SetComponent(e, brain)

		s.checkEscape(e, kind)
	}
}

// checkEscape despawns creatures whose head has left the arena. Only mice
// deliberately do this; their escape is scored.
func (s *MovementSystem) checkEscape(e core.Entity, kind component.Kind) {
	if kind != component.KindMouse {
		return
	}
	seg, ok := s.world.Components.Segmented.GetComponent(e)
	if !ok {
		return
	}
	if s.world.Arena.InBounds(seg.Head) {
		return
	}
	s.world.Emit(event.EventEscape, &event.EscapePayload{Agent: e, Kind: kind})
	s.world.DespawnAgent(e)
}
