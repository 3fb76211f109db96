package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs A* from start to end over g's cached neighbor lists.
//
// Preconditions (violations return an error and leave g untouched):
//  1. g, start and end are non-nil (ErrNilGrid, ErrNilCell).
//  2. start and end belong to g (ErrForeignCell).
//  3. start != end (ErrSameCell).
//  4. Under WithStaleCheck, g.Stale() is false (ErrStaleAdjacency).
//
// Neighbor lists must be current; the engine never refreshes them. A run that
// ends without error always carries one of Success, Failure or Aborted.
func Search(g *grid.Grid, start, end *grid.Cell, onProgress ProgressFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if start == nil || end == nil {
		return Result{}, ErrNilCell
	}
	if !g.Owns(start) {
		return Result{}, fmt.Errorf("%w: start %s", ErrForeignCell, start.Position())
	}
	if !g.Owns(end) {
		return Result{}, fmt.Errorf("%w: end %s", ErrForeignCell, end.Position())
	}
	if start == end {
		return Result{}, fmt.Errorf("%w: both at %s", ErrSameCell, start.Position())
	}
	if cfg.StaleCheck && g.Stale() {
		return Result{}, ErrStaleAdjacency
	}

	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		progress: onProgress,
		options:  cfg,
		gScore:   make(map[*grid.Cell]int),
		fScore:   make(map[*grid.Cell]int),
		prev:     make(map[*grid.Cell]*grid.Cell),
		open:     NewFrontier(),
	}
	cfg.Logger.Debug("astar: search started",
		"start", start.Position().String(), "end", end.Position().String(), "rows", g.Rows())

	res := r.process()
	cfg.Logger.Debug("astar: search finished",
		"outcome", res.Outcome.String(), "expanded", res.Expanded, "opened", res.Opened, "steps", res.Steps())

	return res, nil
}

// runner holds the working set of a single search; it is discarded afterwards.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	progress   ProgressFunc
	options    Options

	gScore map[*grid.Cell]int        // absent means unreached
	fScore map[*grid.Cell]int        // g + h, absent means unreached
	prev   map[*grid.Cell]*grid.Cell // best-known predecessor; start is never a key
	open   *Frontier

	expanded int
	opened   int
}

// cost returns g(c), or +∞ when c was never reached.
func (r *runner) cost(c *grid.Cell) int {
	if v, ok := r.gScore[c]; ok {
		return v
	}

	return math.MaxInt
}

// estimate returns the heuristic distance from c to end.
func (r *runner) estimate(c *grid.Cell) int {
	return r.options.Heuristic(c.Position(), r.end.Position())
}

// process is the main loop: pop, goal check, relax, notify, close.
func (r *runner) process() Result {
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.estimate(r.start)
	r.open.PushOrUpdate(r.start, r.fScore[r.start])

	for r.open.Len() > 0 {
		current := r.open.PopMin()
		r.expanded++

		if current == r.end {
			return r.finish()
		}

		r.relax(current)

		if !r.notify() {
			return r.result(Aborted, nil)
		}
		if current != r.start {
			current.MarkClosed()
		}
	}

	return r.result(Failure, nil)
}

// relax tries to improve every neighbor of current through a unit step.
func (r *runner) relax(current *grid.Cell) {
	tentative := r.gScore[current] + 1
	for _, n := range current.Neighbors() {
		if tentative >= r.cost(n) {
			continue
		}
		r.prev[n] = current
		r.gScore[n] = tentative
		r.fScore[n] = tentative + r.estimate(n)
		if r.open.PushOrUpdate(n, r.fScore[n]) {
			r.opened++
			n.MarkOpen()
		}
	}
}

// finish rebuilds and marks the path, restores end's own marking and emits the
// final notification.
func (r *runner) finish() Result {
	path := Reconstruct(r.prev, r.end)
	if !r.tracePath(path) {
		return r.result(Aborted, nil)
	}
	_ = r.end.Classify(grid.End) // End is a valid classification
	if !r.notify() {
		return r.result(Aborted, nil)
	}

	return r.result(Success, path)
}

// notify invokes the progress callback and reports whether to keep going.
func (r *runner) notify() bool {
	if r.progress != nil && r.progress() == Cancel {
		return false
	}

	return r.options.Ctx.Err() == nil
}

func (r *runner) result(o Outcome, path []*grid.Cell) Result {
	return Result{
		Outcome:  o,
		Path:     path,
		Expanded: r.expanded,
		Opened:   r.opened,
	}
}
