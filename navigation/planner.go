package navigation

import (
	"github.com/lixenwraith/mongoose/core"
	"github.com/lixenwraith/mongoose/engine"
)

// Plan returns a collision-free route from start to goal: start excluded,
// goal included, at most bound waypoints. Returns nil when no such path
// exists within the bound.
//
// The start cell is freed for the duration of the search (it holds the
// asking agent) and the goal is freed tolerantly (it may hold the chased
// entity); both are restored before returning. The search is a
// depth-bounded DFS over free cells enumerating simple paths in the fixed
// core direction order; the first path found wins. Deterministic for a
// given occupancy, not necessarily shortest. Void cells beyond the arena
// edge count as free, matching the arena's boundary policy.
func Plan(a *engine.Arena, start, goal core.Cell, bound int) []core.Cell {
	startOcc, hadStart := a.UnsetIfPresent(start)
	goalOcc, hadGoal := a.UnsetIfPresent(goal)
	defer func() {
		if hadStart {
			a.Set(start, startOcc)
		}
		if hadGoal {
			a.Set(goal, goalOcc)
		}
	}()

	visited := map[core.Cell]bool{start: true}
	path := make([]core.Cell, 0, bound)

	if !walk(a, start, goal, bound, visited, &path) {
		return nil
	}

	route := make([]core.Cell, len(path))
	copy(route, path)
	return route
}

// walk extends the current simple path one cell at a time, backtracking
// when a branch dead-ends or the budget runs out
func walk(a *engine.Arena, at, goal core.Cell, budget int, visited map[core.Cell]bool, path *[]core.Cell) bool {
	if at == goal {
		return true
	}
	if budget == 0 {
		return false
	}

	for dir := 0; dir < core.DirCount; dir++ {
		next := at.Neighbor(dir)
		if visited[next] || a.IsOccupied(next) {
			continue
		}

		visited[next] = true
		*path = append(*path, next)

		if walk(a, next, goal, budget-1, visited, path) {
			return true
		}

		*path = (*path)[:len(*path)-1]
		delete(visited, next) // a different branch may still use this cell
	}
	return false
}
