package system

import (
	"testing"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/event"
)

func TestBodyShiftOrdinaryMove(t *testing.T) {
	w := newTestWorld(10, 10)
	snake := spawnCreature(w, component.KindSnake,
		core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 4}, core.Cell{X: 5, Y: 3})
	setRoute(w, snake, core.Cell{X: 5, Y: 6})

	NewMovementSystem(w).Update(testPeriod)

	want := []core.Cell{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 5, Y: 4}}
	if got := bodyCells(t, w, snake); !cellsEqual(got, want) {
		t.Errorf("body after shift = %v, want %v", got, want)
	}
	if w.Arena.IsOccupied(core.Cell{X: 5, Y: 3}) {
		t.Error("vacated tail cell (5,3) should be free")
	}
	if !w.Arena.IsOccupied(core.Cell{X: 5, Y: 6}) {
		t.Error("new head cell (5,6) should be occupied")
	}
	seg, _ := w.Components.Segmented.GetComponent(snake)
	if len(seg.Segments) != 3 {
		t.Errorf("segment count changed on ordinary move: %d", len(seg.Segments))
	}
	if seg.Head != (core.Cell{X: 5, Y: 6}) {
		t.Errorf("head = %v, want (5,6)", seg.Head)
	}
}

func TestEatBerryGrowsBody(t *testing.T) {
	w := newTestWorld(10, 10)
	snake := spawnCreature(w, component.KindSnake,
		core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 4}, core.Cell{X: 5, Y: 3})
	berry := placeBerry(w, core.Cell{X: 5, Y: 6})
	setRoute(w, snake, core.Cell{X: 5, Y: 6})

	NewMovementSystem(w).Update(testPeriod)

	if w.Components.Kind.HasEntity(berry) {
		t.Error("berry should be despawned")
	}

	// Tail-vacate suppressed exactly once: the old tail cell stays
	// occupied and hosts the appended segment
	want := []core.Cell{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}
	if got := bodyCells(t, w, snake); !cellsEqual(got, want) {
		t.Errorf("body after growth = %v, want %v", got, want)
	}
	if !w.Arena.IsOccupied(core.Cell{X: 5, Y: 3}) {
		t.Error("old tail cell should remain occupied after growth")
	}

	var sawConsumption, sawGrowth bool
	for _, ev := range w.Events.Consume() {
		switch ev.Type {
		case event.EventConsumption:
			p := ev.Payload.(*event.ConsumptionPayload)
			if p.VictimKind != component.KindBerry || p.Eater != snake {
				t.Errorf("unexpected consumption payload %+v", p)
			}
			sawConsumption = true
		case event.EventGrowth:
			sawGrowth = true
		}
	}
	if !sawConsumption || !sawGrowth {
		t.Errorf("expected consumption and growth events, got consumption=%v growth=%v",
			sawConsumption, sawGrowth)
	}

	// The following move is ordinary again: vacate resumes
	setRoute(w, snake, core.Cell{X: 5, Y: 7})
	NewMovementSystem(w).Update(testPeriod)
	if w.Arena.IsOccupied(core.Cell{X: 5, Y: 3}) {
		t.Error("tail cell should vacate on the move after growth")
	}
	seg, _ := w.Components.Segmented.GetComponent(snake)
	if len(seg.Segments) != 4 {
		t.Errorf("segment count = %d, want 4", len(seg.Segments))
	}
}

func TestBlockedMoveClearsRoute(t *testing.T) {
	w := newTestWorld(10, 10)
	snake := spawnCreature(w, component.KindSnake,
		core.Cell{X: 2, Y: 2}, core.Cell{X: 2, Y: 1})
	spawnCreature(w, component.KindCobra, core.Cell{X: 2, Y: 3})
	setRoute(w, snake, core.Cell{X: 2, Y: 3}, core.Cell{X: 2, Y: 4})

	NewMovementSystem(w).Update(testPeriod)

	want := []core.Cell{{X: 2, Y: 2}, {X: 2, Y: 1}}
	if got := bodyCells(t, w, snake); !cellsEqual(got, want) {
		t.Errorf("blocked mover should stay put, body = %v", got)
	}
	brain, _ := w.Components.Brain.GetComponent(snake)
	if len(brain.Route) != 0 {
		t.Errorf("route should be cleared on block, got %v", brain.Route)
	}

	blocked := false
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventBlockedMove {
			p := ev.Payload.(*event.BlockedMovePayload)
			if p.Agent == snake && p.BlockerKind == component.KindCobra {
				blocked = true
			}
		}
	}
	if !blocked {
		t.Error("expected a blocked-move event")
	}
}

// Two agents race for one free cell: tick order decides. The first mover
// claims it; the second observes the occupancy and aborts, clearing its
// route.
func TestSameDestinationFirstMoverWins(t *testing.T) {
	w := newTestWorld(10, 10)
	first := spawnCreature(w, component.KindSnake, core.Cell{X: 6, Y: 7})
	second := spawnCreature(w, component.KindSnake, core.Cell{X: 8, Y: 7})
	goal := core.Cell{X: 7, Y: 7}
	setRoute(w, first, goal)
	setRoute(w, second, goal)

	NewMovementSystem(w).Update(testPeriod)

	occ, ok := w.Arena.OccupantAt(goal)
	if !ok || occ.Entity != first {
		t.Fatalf("first mover should hold %v, got %+v", goal, occ)
	}
	if got := bodyCells(t, w, second); !cellsEqual(got, []core.Cell{{X: 8, Y: 7}}) {
		t.Errorf("second mover should not have moved, body = %v", got)
	}
	brain, _ := w.Components.Brain.GetComponent(second)
	if len(brain.Route) != 0 {
		t.Errorf("second mover's route should be cleared, got %v", brain.Route)
	}
}

func TestMongooseKillsWholeSnake(t *testing.T) {
	w := newTestWorld(10, 10)
	snake := spawnCreature(w, component.KindSnake,
		core.Cell{X: 4, Y: 4}, core.Cell{X: 4, Y: 5}, core.Cell{X: 4, Y: 6})
	mongoose := spawnCreature(w, component.KindMongoose,
		core.Cell{X: 3, Y: 5}, core.Cell{X: 2, Y: 5})

	// Step into the snake's middle segment
	if out := advanceAgent(w, mongoose, component.KindMongoose, core.Cell{X: 4, Y: 5}); out != stepMoved {
		t.Fatal("mongoose should consume the snake, not be blocked")
	}

	if w.Components.Segmented.HasEntity(snake) {
		t.Error("snake should be fully despawned")
	}
	for _, c := range []core.Cell{{X: 4, Y: 4}, {X: 4, Y: 6}} {
		if w.Arena.IsOccupied(c) {
			t.Errorf("snake body cell %v should be freed", c)
		}
	}
	occ, _ := w.Arena.OccupantAt(core.Cell{X: 4, Y: 5})
	if occ.Entity != mongoose {
		t.Error("mongoose head should occupy the consumed cell")
	}
	// Consumption grows the eater
	seg, _ := w.Components.Segmented.GetComponent(mongoose)
	if len(seg.Segments) != 3 {
		t.Errorf("mongoose segments = %d, want 3 after growth", len(seg.Segments))
	}
}

func TestMongooseBlockedByCobra(t *testing.T) {
	w := newTestWorld(10, 10)
	spawnCreature(w, component.KindCobra, core.Cell{X: 4, Y: 5})
	mongoose := spawnCreature(w, component.KindMongoose, core.Cell{X: 3, Y: 5})

	if out := advanceAgent(w, mongoose, component.KindMongoose, core.Cell{X: 4, Y: 5}); out != stepBlocked {
		t.Error("mongoose cannot defeat a cobra; the move must block")
	}
}

func TestMouseEscapesOffEdge(t *testing.T) {
	w := newTestWorld(10, 10)
	mouse := spawnCreature(w, component.KindMouse, core.Cell{X: 0, Y: 4})
	setRoute(w, mouse, core.Cell{X: -1, Y: 4})

	NewMovementSystem(w).Update(testPeriod)

	if w.Components.Kind.HasEntity(mouse) {
		t.Error("escaped mouse should be despawned")
	}
	if w.Arena.IsOccupied(core.Cell{X: 0, Y: 4}) {
		t.Error("the cell the mouse left should be free")
	}
	escaped := false
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventEscape {
			escaped = true
		}
	}
	if !escaped {
		t.Error("expected an escape event")
	}
}
