package component

import "github.com/lixenwraith/mongoose/core"

// SegmentedComponent is an ordered chain of body segment entities, head
// first, tail last. Single-cell creatures carry a one-segment chain so
// movement treats every body uniformly.
//
// Invariant: consecutive segments occupy grid-adjacent cells. Growth
// appends the new segment at the cell the tail just vacated, so the chain
// never breaks.
type SegmentedComponent struct {
	// Head duplicates the first segment's cell for fast access
	Head core.Cell

	Segments []core.Entity
}
