package system

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/navigation"
	"github.com/lixenwraith/mongoose/parameter"
)

// PlanningSystem picks targets and computes routes for creature brains.
// Runs per agent when its planning cooldown fires and no route is active.
type PlanningSystem struct {
	world *engine.World
}

func NewPlanningSystem(w *engine.World) engine.System {
	return &PlanningSystem{world: w}
}

func (s *PlanningSystem) Name() string { return "planning" }

func (s *PlanningSystem) Priority() int { return parameter.PriorityPlanning }

func (s *PlanningSystem) Update(dt time.Duration) {
	w := s.world
	for _, e := range w.Components.Brain.GetAllEntities() {
		brain, ok := w.Components.Brain.GetComponent(e)
		if !ok {
			continue
		}

		brain.PlanRemaining -= dt
		if brain.PlanRemaining > 0 {
			w.Components.Brain.SetComponent(e, brain)
			continue
		}
		brain.PlanRemaining = brain.PlanPeriod

		// A despawned chase target invalidates whatever was planned
		// toward it; the re-roll happens next cycle
		if brain.Target.Kind == component.TargetEntity && !w.Components.Kind.HasEntity(brain.Target.Entity) {
			brain.Target = component.Target{}
			brain.Route = nil
			w.Components.Brain.SetComponent(e, brain)
			continue
		}

		if len(brain.Route) > 0 {
			// Still walking the current route
			w.Components.Brain.SetComponent(e, brain)
			continue
		}

		seg, ok := w.Components.Segmented.GetComponent(e)
		if !ok {
			w.Components.Brain.SetComponent(e, brain)
			continue
		}

		if brain.Target.Kind == component.TargetNone {
			s.roll(e, &brain, seg.Head)
		}
		s.plan(seg.Head, &brain)
		w.Components.Brain.SetComponent(e, brain)
	}
}

// roll draws once from the agent kind's weight table and resolves the
// outcome to a target, if any qualifies
func (s *PlanningSystem) roll(e core.Entity, brain *component.BrainComponent, head core.Cell) {
	w := s.world

	weights := kindWeights(w.KindOf(e))
	switch weights[w.Rand.Intn(10)] {
	case parameter.RollChaseBerry:
		brain.Target = s.chase(head, component.KindBerry)
	case parameter.RollChaseMouse:
		brain.Target = s.chase(head, component.KindMouse)
	case parameter.RollWander:
		brain.Target = s.wander(head)
	case parameter.RollIdle:
		// sit this cycle out
	}
}

func kindWeights(k component.Kind) [10]int {
	switch k {
	case component.KindCobra:
		return parameter.CobraWeights
	case component.KindMouse:
		return parameter.MouseWeights
	default:
		return parameter.SnakeWeights
	}
}

// chase picks uniformly among live entities of the wanted kind within the
// path bound, measured with the coordinate-sum proxy. None in range means
// no target this cycle.
func (s *PlanningSystem) chase(head core.Cell, wanted component.Kind) component.Target {
	w := s.world

	var candidates []core.Entity
	for _, e := range w.Components.Kind.GetAllEntities() {
		if w.KindOf(e) != wanted {
			continue
		}
		cell, ok := s.entityCell(e)
		if !ok {
			continue
		}
		if core.DistanceProxy(head, cell) <= w.Config.PathBound {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return component.Target{}
	}

	pick := candidates[w.Rand.Intn(len(candidates))]
	return component.Target{Kind: component.TargetEntity, Entity: pick}
}

// wander draws a free cell from the box around the head, clipped to the
// arena. Gives up after the attempt budget.
func (s *PlanningSystem) wander(head core.Cell) component.Target {
	w := s.world
	half := parameter.WanderHalfWidth

	for i := 0; i < parameter.WanderAttempts; i++ {
		c := core.Cell{
			X: head.X + w.Rand.Intn(2*half+1) - half,
			Y: head.Y + w.Rand.Intn(2*half+1) - half,
		}
		if !w.Arena.InBounds(c) || w.Arena.IsOccupied(c) || c == head {
			continue
		}
		return component.Target{Kind: component.TargetCell, Cell: c}
	}
	return component.Target{}
}

// plan resolves the target to a goal cell and runs the bounded path
// search. No route found is not an error: the agent simply waits for its
// next planning cycle.
func (s *PlanningSystem) plan(head core.Cell, brain *component.BrainComponent) {
	w := s.world

	var goal core.Cell
	switch brain.Target.Kind {
	case component.TargetEntity:
		cell, ok := s.entityCell(brain.Target.Entity)
		if !ok {
			brain.Target = component.Target{}
			return
		}
		goal = cell
	case component.TargetCell:
		goal = brain.Target.Cell
	default:
		return
	}

	if goal == head {
		// Wherever you go, there you are
		brain.Target = component.Target{}
		return
	}

	brain.Route = navigation.Plan(w.Arena, head, goal, w.Config.PathBound)
	if brain.Target.Kind == component.TargetCell {
		// Fixed-cell targets are one-shot whether or not a route came
		// back: an unreachable cell must not pin the agent, the next
		// cycle re-rolls. Entity targets stay committed until consumed
		// or lost.
		brain.Target = component.Target{}
	}
}

// entityCell locates a target entity: segmented creatures by their head,
// items by their position component
func (s *PlanningSystem) entityCell(e core.Entity) (core.Cell, bool) {
	if seg, ok := s.world.Components.Segmented.GetComponent(e); ok {
		return seg.Head, true
	}
	if pos, ok := s.world.Positions.GetComponent(e); ok {
		return pos.Cell(), true
	}
	return core.Cell{}, false
}
