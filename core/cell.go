package core

// Cell is one discrete grid coordinate in the arena.
type Cell struct {
	X, Y int
}

// Direction indices. The order is also the planner's fixed neighbor
// traversal order.
const (
	DirLeft = iota
	DirUp
	DirRight
	DirDown
	DirCount
)

// DirDelta maps a direction index to its cell offset. Y grows upward.
var DirDelta = [DirCount]Cell{
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
}

// Neighbor returns the grid-adjacent cell in the given direction.
func (c Cell) Neighbor(dir int) Cell {
	d := DirDelta[dir]
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Adjacent reports whether two cells share a grid edge.
func (c Cell) Adjacent(o Cell) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// DistanceProxy is the coordinate-sum distance used to filter chase
// candidates. The deltas are summed before taking the absolute value, so
// mixed-sign deltas partially cancel and the result undershoots Manhattan
// distance. Gameplay ranges are tuned against this metric.
func DistanceProxy(a, b Cell) int {
	d := (b.X - a.X) + (b.Y - a.Y)
	if d < 0 {
		return -d
	}
	return d
}
