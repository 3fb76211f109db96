// Package gridpath is a step-by-step shortest-path engine for square grids.
//
// A grid is a rows×rows board of cells. Each cell is empty or classified as
// start, end or barrier, and carries the search markings open, closed and
// path. A* with unit cost and the Manhattan heuristic finds a shortest
// 4-connected route and reports progress after every step. The caller can
// redraw the board from those notifications or stop the run.
//
// Packages:
//
//	grid/          cells, classification, cached 4-neighbor lists, reachability
//	astar/         the search engine: frontier, path reconstruction, progress
//	session/       an editable board with start/end singletons and a Run method
//	scenario/      HCL scenario files decoded into ready sessions
//	render/        ASCII frames and PNG snapshots of a board
//	cmd/gridpath/  command-line runner with animation, PNG and metrics output
//
// Quick ASCII example (S start, E end, # barrier, * path, x closed, o open):
//
//	Sxxxx
//	*****
//	####*
//	...o*
//	....E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
