package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
)

const testPeriod = 100 * time.Millisecond

func newTestWorld(width, height int) *engine.World {
	return engine.NewWorld(engine.Config{
		Width:     width,
		Height:    height,
		PathBound: 8,
		Seed:      42,
	})
}

// spawnCreature places a segmented creature on explicit cells, head first,
// with both cadences primed to fire on the next update
func spawnCreature(w *engine.World, kind component.Kind, cells ...core.Cell) core.Entity {
	root := w.CreateEntity()
	segments := make([]core.Entity, 0, len(cells))
	for _, c := range cells {
		seg := w.CreateEntity()
		w.Positions.SetComponent(seg, component.At(c))
		w.Arena.Set(c, engine.Occupant{Entity: root, Kind: kind})
		segments = append(segments, seg)
	}
	w.Components.Kind.SetComponent(root, component.KindComponent{Kind: kind})
	w.Components.Segmented.SetComponent(root, component.SegmentedComponent{
		Head:     cells[0],
		Segments: segments,
	})
	w.Components.Brain.SetComponent(root, component.BrainComponent{
		MovePeriod: testPeriod,
		PlanPeriod: testPeriod,
	})
	return root
}

func placeBerry(w *engine.World, c core.Cell) core.Entity {
	e := w.CreateEntity()
	w.Positions.SetComponent(e, component.At(c))
	w.Components.Kind.SetComponent(e, component.KindComponent{Kind: component.KindBerry})
	w.Arena.Set(c, engine.Occupant{Entity: e, Kind: component.KindBerry})
	return e
}

func setRoute(w *engine.World, root core.Entity, route ...core.Cell) {
	brain, ok := w.Components.Brain.GetComponent(root)
	if !ok {
		panic("setRoute: no brain")
	}
	brain.Route = route
	w.Components.Brain.SetComponent(root, brain)
}

func bodyCells(t *testing.T, w *engine.World, root core.Entity) []core.Cell {
	t.Helper()
	seg, ok := w.Components.Segmented.GetComponent(root)
	if !ok {
		t.Fatalf("entity %d has no segmented body", root)
	}
	cells := make([]core.Cell, 0, len(seg.Segments))
	for _, s := range seg.Segments {
		pos, ok := w.Positions.GetComponent(s)
		if !ok {
			t.Fatalf("segment %d has no position", s)
		}
		cells = append(cells, pos.Cell())
	}
	return cells
}

func cellsEqual(a, b []core.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
