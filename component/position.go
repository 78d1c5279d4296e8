package component

import "github.com/lixenwraith/mongoose/core"

// PositionComponent is a grid cell position. Segments hold one each; the
// arena's occupancy index is maintained separately by the movement path.
type PositionComponent struct {
	X, Y int
}

func (p PositionComponent) Cell() core.Cell {
	return core.Cell{X: p.X, Y: p.Y}
}

// At builds a position component from a cell
func At(c core.Cell) PositionComponent {
	return PositionComponent{X: c.X, Y: c.Y}
}
