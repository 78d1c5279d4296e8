package engine

import (
	"time"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/event"
	"github.com/lixenwraith/mongoose/vmath"
)

// Config sizes a world. Tests shrink it; the game uses the parameter
// package defaults.
type Config struct {
	Width     int
	Height    int
	PathBound int
	Seed      uint64
}

// ComponentStore groups the typed stores
type ComponentStore struct {
	Kind      *Store[component.KindComponent]
	Segmented *Store[component.SegmentedComponent]
	Brain     *Store[component.BrainComponent]
	Player    *Store[component.PlayerComponent]
}

// System is the interface all simulation systems implement
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// World is the one simulation context passed to every subsystem: entity
// allocation, typed component stores, the occupancy arena, the scoreboard
// and the outbound event queue. No hidden globals.
type World struct {
	nextEntityID core.Entity

	Config     Config
	Arena      *Arena
	Positions  *Store[component.PositionComponent]
	Components ComponentStore
	Events     *event.EventQueue
	Rand       *vmath.FastRand
	Scoreboard *Scoreboard

	// Frame counts completed ticks, stamped on emitted events
	Frame int64

	systems []System
}

// NewWorld creates a world with an empty arena
func NewWorld(cfg Config) *World {
	return &World{
		nextEntityID: 1,
		Config:       cfg,
		Arena:        NewArena(cfg.Width, cfg.Height),
		Positions:    NewStore[component.PositionComponent](),
		Components: ComponentStore{
			Kind:      NewStore[component.KindComponent](),
			Segmented: NewStore[component.SegmentedComponent](),
			Brain:     NewStore[component.BrainComponent](),
			Player:    NewStore[component.PlayerComponent](),
		},
		Events:     event.NewEventQueue(),
		Rand:       vmath.NewFastRand(cfg.Seed),
		Scoreboard: &Scoreboard{},
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs one tick: every system in priority order, to sequential
// completion. No system mutates the arena concurrently with another.
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(dt)
	}
	w.Frame++
}

// Emit stamps the current frame onto an event and queues it
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.Frame})
}

// KindOf returns the species of a root entity, KindNone if untagged
func (w *World) KindOf(e core.Entity) component.Kind {
	if kc, ok := w.Components.Kind.GetComponent(e); ok {
		return kc.Kind
	}
	return component.KindNone
}

// DespawnAgent removes an agent and frees every cell its body holds.
// Off-grid segments were never recorded, so the tolerant unset is used.
func (w *World) DespawnAgent(root core.Entity) {
	if seg, ok := w.Components.Segmented.GetComponent(root); ok {
		for _, s := range seg.Segments {
			if pos, ok := w.Positions.GetComponent(s); ok {
				w.Arena.UnsetIfPresent(pos.Cell())
				w.Positions.RemoveEntity(s)
			}
		}
	}
	w.Components.Segmented.RemoveEntity(root)
	w.Components.Brain.RemoveEntity(root)
	w.Components.Player.RemoveEntity(root)
	w.Components.Kind.RemoveEntity(root)
}

// DespawnItem removes a single-cell, bodiless entity such as a berry
func (w *World) DespawnItem(e core.Entity) {
	if pos, ok := w.Positions.GetComponent(e); ok {
		w.Arena.UnsetIfPresent(pos.Cell())
		w.Positions.RemoveEntity(e)
	}
	w.Components.Kind.RemoveEntity(e)
}
