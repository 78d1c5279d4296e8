package system

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
	"github.com/lixenwraith/mongoose/parameter"
)

// SpawnSystem populates the arena on independent countdown timers:
// berries and mice at random free cells, snakes and cobras at the arena
// edges, head one cell off-grid, walking in on their first moves.
type SpawnSystem struct {
	world *engine.World

	berryRemaining time.Duration
	mouseRemaining time.Duration
	snakeRemaining time.Duration
	cobraRemaining time.Duration
}

func NewSpawnSystem(w *engine.World) engine.System {
	return &SpawnSystem{
		world:          w,
		berryRemaining: parameter.BerrySpawnPeriod,
		mouseRemaining: parameter.MouseSpawnPeriod,
		snakeRemaining: parameter.SnakeSpawnPeriod,
		cobraRemaining: parameter.CobraSpawnPeriod,
	}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update(dt time.Duration) {
	if s.berryRemaining -= dt; s.berryRemaining <= 0 {
		s.berryRemaining = parameter.BerrySpawnPeriod
		s.spawnBerry()
	}
	if s.mouseRemaining -= dt; s.mouseRemaining <= 0 {
		s.mouseRemaining = parameter.MouseSpawnPeriod
		s.spawnMouse()
	}
	if s.snakeRemaining -= dt; s.snakeRemaining <= 0 {
		s.snakeRemaining = parameter.SnakeSpawnPeriod
		SpawnEdgeCreature(s.world, component.KindSnake)
	}
	if s.cobraRemaining -= dt; s.cobraRemaining <= 0 {
		s.cobraRemaining = parameter.CobraSpawnPeriod
		SpawnEdgeCreature(s.world, component.KindCobra)
	}
}

// randomFreeCell draws an unoccupied in-arena cell, or reports failure
// after the placement attempt budget
func randomFreeCell(w *engine.World) (core.Cell, bool) {
	for i := 0; i < parameter.SpawnPlacementAttempts; i++ {
		c := core.Cell{X: w.Rand.Intn(w.Config.Width), Y: w.Rand.Intn(w.Config.Height)}
		if !w.Arena.IsOccupied(c) {
			return c, true
		}
	}
	return core.Cell{}, false
}

func (s *SpawnSystem) spawnBerry() {
	w := s.world
	c, ok := randomFreeCell(w)
	if !ok {
		return // crowded board; try again next cycle
	}

	e := w.CreateEntity()
	w.Positions.SetComponent(e, component.At(c))
	w.Components.Kind.SetComponent(e, component.KindComponent{Kind: component.KindBerry})
	w.Arena.Set(c, engine.Occupant{Entity: e, Kind: component.KindBerry})
}

func (s *SpawnSystem) spawnMouse() {
	w := s.world
	c, ok := randomFreeCell(w)
	if !ok {
		return
	}

	root := w.CreateEntity()
	segment := w.CreateEntity()
	w.Positions.SetComponent(segment, component.At(c))
	w.Components.Kind.SetComponent(root, component.KindComponent{Kind: component.KindMouse})
	w.Components.Segmented.SetComponent(root, component.SegmentedComponent{
		Head:     c,
		Segments: []core.Entity{segment},
	})
	w.Components.Brain.SetComponent(root, component.BrainComponent{
		MovePeriod:    parameter.MouseMovePeriod,
		PlanPeriod:    parameter.MousePlanPeriod,
		MoveRemaining: parameter.MouseMovePeriod,
		PlanRemaining: parameter.MousePlanPeriod,
	})
	w.Arena.Set(c, engine.Occupant{Entity: root, Kind: component.KindMouse})
}

// SpawnEdgeCreature places a predator just outside a random arena side,
// body trailing outward into the void; only in-bounds cells are recorded.
// Exported for game setup and tests.
func SpawnEdgeCreature(w *engine.World, kind component.Kind) core.Entity {
	var head core.Cell
	var delta core.Cell

	for i := 0; i < parameter.SpawnPlacementAttempts; i++ {
		p := w.Rand.Intn(w.Config.Height+4) - 2
		switch w.Rand.Intn(4) {
		case core.DirLeft:
			head, delta = core.Cell{X: -1, Y: p}, core.Cell{X: -1, Y: 0}
		case core.DirUp:
			head, delta = core.Cell{X: p, Y: w.Config.Height}, core.Cell{X: 0, Y: 1}
		case core.DirRight:
			head, delta = core.Cell{X: w.Config.Width, Y: p}, core.Cell{X: 1, Y: 0}
		case core.DirDown:
			head, delta = core.Cell{X: p, Y: -1}, core.Cell{X: 0, Y: -1}
		}
		if !w.Arena.IsOccupied(head) {
			break
		}
	}

	movePeriod, planPeriod := parameter.SnakeMovePeriod, parameter.SnakePlanPeriod
	if kind == component.KindCobra {
		movePeriod, planPeriod = parameter.CobraMovePeriod, parameter.CobraPlanPeriod
	}

	root := w.CreateEntity()
	n := w.Rand.Intn(parameter.SnakeMaxStartSegments + 1)

	cells := make([]core.Cell, 0, n+1)
	c := head
	for i := 0; i <= n; i++ {
		cells = append(cells, c)
		c = core.Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
	}

	segments := make([]core.Entity, 0, len(cells))
	for _, cell := range cells {
		seg := w.CreateEntity()
		w.Positions.SetComponent(seg, component.At(cell))
		w.Arena.Set(cell, engine.Occupant{Entity: root, Kind: kind}) // no-op off-grid
		segments = append(segments, seg)
	}

	w.Components.Kind.SetComponent(root, component.KindComponent{Kind: kind})
	w.Components.Segmented.SetComponent(root, component.SegmentedComponent{
		Head:     head,
		Segments: segments,
	})
	w.Components.Brain.SetComponent(root, component.BrainComponent{
		MovePeriod:    movePeriod,
		PlanPeriod:    planPeriod,
		MoveRemaining: movePeriod,
		PlanRemaining: planPeriod,
	})
	return root
}

// SpawnMongoose places the three-segment protagonist at the arena center
func SpawnMongoose(w *engine.World) core.Entity {
	x, y := w.Config.Width/2, w.Config.Height/2
	cells := []core.Cell{
		{X: x, Y: y},
		{X: x + 1, Y: y},
		{X: x + 1, Y: y - 1},
	}

	root := w.CreateEntity()
	segments := make([]core.Entity, 0, len(cells))
	for _, c := range cells {
		seg := w.CreateEntity()
		w.Positions.SetComponent(seg, component.At(c))
		w.Arena.Set(c, engine.Occupant{Entity: root, Kind: component.KindMongoose})
		segments = append(segments, seg)
	}

	w.Components.Kind.SetComponent(root, component.KindComponent{Kind: component.KindMongoose})
	w.Components.Segmented.SetComponent(root, component.SegmentedComponent{
		Head:     cells[0],
		Segments: segments,
	})
	w.Components.Player.SetComponent(root, component.PlayerComponent{
		InputPeriod: parameter.PlayerInputPeriod,
		Next:        -1,
	})
	return root
}
