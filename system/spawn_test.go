package system

import (
	"testing"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/parameter"
)

func TestBerrySpawnOccupiesFreeCell(t *testing.T) {
	w := newTestWorld(20, 20)
	sys := NewSpawnSystem(w)

	sys.Update(parameter.BerrySpawnPeriod)

	var berries []core.Entity
	for _, e := range w.Components.Kind.GetAllEntities() {
		if w.KindOf(e) == component.KindBerry {
			berries = append(berries, e)
		}
	}
	if len(berries) != 1 {
		t.Fatalf("expected 1 berry, got %d", len(berries))
	}
	pos, ok := w.Positions.GetComponent(berries[0])
	if !ok {
		t.Fatal("berry has no position")
	}
	occ, ok := w.Arena.OccupantAt(pos.Cell())
	if !ok || occ.Entity != berries[0] || occ.Kind != component.KindBerry {
		t.Errorf("berry cell occupant = %+v", occ)
	}
}

func TestEdgeSpawnStartsOffGrid(t *testing.T) {
	w := newTestWorld(20, 20)

	for i := 0; i < 20; i++ {
		snake := SpawnEdgeCreature(w, component.KindSnake)

		seg, ok := w.Components.Segmented.GetComponent(snake)
		if !ok {
			t.Fatal("edge spawn has no body")
		}
		if w.Arena.InBounds(seg.Head) {
			t.Errorf("edge-spawned head %v should start outside the arena", seg.Head)
		}
		if len(seg.Segments) < 1 || len(seg.Segments) > parameter.SnakeMaxStartSegments+1 {
			t.Errorf("segment count %d outside spawn range", len(seg.Segments))
		}

		// Only in-bounds cells are recorded, and they belong to this snake
		for _, c := range bodyCells(t, w, snake) {
			if !w.Arena.InBounds(c) {
				continue
			}
			occ, ok := w.Arena.OccupantAt(c)
			if !ok || occ.Entity != snake {
				t.Errorf("in-bounds body cell %v not held by the snake: %+v", c, occ)
			}
		}

		if _, ok := w.Components.Brain.GetComponent(snake); !ok {
			t.Error("edge spawn needs a brain")
		}

		w.DespawnAgent(snake) // keep the edges clear for the next round
	}
}

func TestCobraCadencesFasterThanSnake(t *testing.T) {
	w := newTestWorld(20, 20)
	snake := SpawnEdgeCreature(w, component.KindSnake)
	cobra := SpawnEdgeCreature(w, component.KindCobra)

	sb, _ := w.Components.Brain.GetComponent(snake)
	cb, _ := w.Components.Brain.GetComponent(cobra)
	if cb.MovePeriod >= sb.MovePeriod {
		t.Errorf("cobra move period %v should be shorter than snake's %v", cb.MovePeriod, sb.MovePeriod)
	}
}

func TestSpawnMongooseAtCenter(t *testing.T) {
	w := newTestWorld(20, 20)
	m := SpawnMongoose(w)

	want := []core.Cell{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 9}}
	if got := bodyCells(t, w, m); !cellsEqual(got, want) {
		t.Errorf("mongoose body = %v, want %v", got, want)
	}
	for _, c := range want {
		occ, ok := w.Arena.OccupantAt(c)
		if !ok || occ.Entity != m {
			t.Errorf("cell %v not held by mongoose", c)
		}
	}
	if _, ok := w.Components.Player.GetComponent(m); !ok {
		t.Error("mongoose needs a player component")
	}
	if _, ok := w.Components.Brain.GetComponent(m); ok {
		t.Error("the protagonist is input-driven, not brain-driven")
	}
}
