package engine

import (
	"fmt"

	"github.com/lixenwraith/mongoose/component"
	"github.com/lixenwraith/mongoose/core"
)

// Occupant tags an arena cell with the entity holding it and its kind.
// For segmented creatures the entity is the body's root, so any occupied
// cell resolves straight to the creature it belongs to. The zero Occupant
// means the cell is free.
type Occupant struct {
	Entity core.Entity
	Kind   component.Kind
}

// Arena is the dense occupancy grid. At most one occupant per cell.
//
// Cells outside [0,W)x[0,H) are a permanently empty, edge-less void:
// creatures may exist there (edge spawns walking in, mice escaping) but are
// never recorded, and queries answer "free". Free-cell connectivity is
// derived from occupancy on demand rather than kept as a separate edge
// structure, so the occupancy/adjacency agreement holds by construction.
type Arena struct {
	Width  int
	Height int
	cells  []Occupant // 1D array: index = y*Width + x
}

// NewArena creates an empty arena with the given dimensions
func NewArena(width, height int) *Arena {
	return &Arena{
		Width:  width,
		Height: height,
		cells:  make([]Occupant, width*height),
	}
}

// InBounds reports whether c is inside the arena proper
func (a *Arena) InBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// Set records an occupant at c. Setting an already-occupied cell means the
// occupancy bookkeeping is broken upstream; it panics rather than let the
// corruption spread. Out-of-range cells are silently ignored.
func (a *Arena) Set(c core.Cell, o Occupant) {
	if !a.InBounds(c) {
		return
	}
	idx := c.Y*a.Width + c.X
	if a.cells[idx].Entity != 0 {
		panic(fmt.Sprintf("arena: setting cell (%d,%d) that is already occupied by entity %d",
			c.X, c.Y, a.cells[idx].Entity))
	}
	a.cells[idx] = o
}

// Unset clears c and returns its former occupant. Unsetting a free cell
// panics for the same reason Set does. Out-of-range cells are silently
// ignored and report a zero occupant.
func (a *Arena) Unset(c core.Cell) Occupant {
	if !a.InBounds(c) {
		return Occupant{}
	}
	idx := c.Y*a.Width + c.X
	o := a.cells[idx]
	if o.Entity == 0 {
		panic(fmt.Sprintf("arena: unsetting cell (%d,%d) that is already free", c.X, c.Y))
	}
	a.cells[idx] = Occupant{}
	return o
}

// UnsetIfPresent clears c if occupied, reporting what was there. Used when
// the caller cannot know occupancy in advance: plan goals that may hold
// the chased entity, despawn sweeps over bodies that straddle the edge.
func (a *Arena) UnsetIfPresent(c core.Cell) (Occupant, bool) {
	if !a.InBounds(c) {
		return Occupant{}, false
	}
	idx := c.Y*a.Width + c.X
	o := a.cells[idx]
	if o.Entity == 0 {
		return Occupant{}, false
	}
	a.cells[idx] = Occupant{}
	return o, true
}

// OccupantAt returns the occupant at c. Out-of-range cells answer "none"
func (a *Arena) OccupantAt(c core.Cell) (Occupant, bool) {
	if !a.InBounds(c) {
		return Occupant{}, false
	}
	o := a.cells[c.Y*a.Width+c.X]
	return o, o.Entity != 0
}

// IsOccupied reports whether c holds an occupant. Out-of-range cells are
// always free
func (a *Arena) IsOccupied(c core.Cell) bool {
	if !a.InBounds(c) {
		return false
	}
	return a.cells[c.Y*a.Width+c.X].Entity != 0
}

// Traversable reports whether u and v are grid-adjacent and both free.
// This is the connectivity edge query: an edge exists iff both endpoints
// are unoccupied.
func (a *Arena) Traversable(u, v core.Cell) bool {
	return u.Adjacent(v) && !a.IsOccupied(u) && !a.IsOccupied(v)
}
