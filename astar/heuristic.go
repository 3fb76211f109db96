package astar

import "github.com/katalvlaran/gridpath/grid"

// Heuristic estimates the remaining cost between two positions.
type Heuristic func(a, b grid.Position) int

// Manhattan returns |Δrow| + |Δcol|, admissible and consistent for
// 4-directional unit-cost movement.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
