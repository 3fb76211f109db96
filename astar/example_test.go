package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch routes around a wall with a single gap on the right.
//
//	S . . . .
//	. . . . .
//	# # # # .
//	. . . . .
//	. . . . E
func ExampleSearch() {
	g, _ := grid.New(5)
	start, end := g.At(0, 0), g.At(4, 4)
	_ = start.Classify(grid.Start)
	_ = end.Classify(grid.End)
	for col := 0; col < 4; col++ {
		_ = g.At(2, col).Classify(grid.Barrier)
	}
	g.RefreshAllNeighbors()

	frames := 0
	res, err := astar.Search(g, start, end, func() astar.Signal {
		frames++
		return astar.Continue
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("outcome:", res.Outcome)
	fmt.Println("steps:", res.Steps())
	fmt.Println("path:", res.Positions())
	fmt.Println("path cells marked:", g.Count(grid.Path))

	// Output:
	// outcome: success
	// steps: 8
	// path: [(0,0) (1,0) (1,1) (1,2) (1,3) (1,4) (2,4) (3,4) (4,4)]
	// path cells marked: 7
}

// ExampleSearch_cancel stops a run from inside the progress callback.
func ExampleSearch_cancel() {
	g, _ := grid.New(8)
	g.RefreshAllNeighbors()

	budget := 3
	res, _ := astar.Search(g, g.At(0, 0), g.At(7, 7), func() astar.Signal {
		budget--
		if budget == 0 {
			return astar.Cancel
		}
		return astar.Continue
	})

	fmt.Println(res.Outcome, res.Expanded)

	// Output:
	// aborted 3
}
