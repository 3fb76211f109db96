package astar

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct walks predecessors back from end and returns the route from the
// first cell without a predecessor (the start) to end, both inclusive.
// It does not touch cell state.
func Reconstruct(predecessors map[*grid.Cell]*grid.Cell, end *grid.Cell) []*grid.Cell {
	path := []*grid.Cell{end}
	for cur := end; ; {
		prev, ok := predecessors[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// tracePath marks every intermediate cell of path as Path, walking from end
// toward start and notifying after each mark. It reports false on cancellation.
func (r *runner) tracePath(path []*grid.Cell) bool {
	for i := len(path) - 2; i >= 1; i-- {
		path[i].MarkPath()
		if !r.notify() {
			return false
		}
	}

	return true
}
