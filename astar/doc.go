// Package astar implements best-first (A*) shortest-path search over a grid.Grid
// with unit edge cost, deterministic tie-breaking and incremental progress reporting.
//
// The search works on the cached neighbor lists of the grid (see grid.Cell.RefreshNeighbors);
// it never refreshes them itself. Barriers are therefore excluded at neighbor-derivation
// time, not at search time.
//
// Algorithm:
//
//  1. g(start)=0, f(start)=h(start,end); every other cell is unreached (+∞).
//  2. The frontier is ordered by (f, sequence). The sequence is a strictly increasing
//     insertion counter, so among equal f-scores the earliest-inserted cell wins.
//     Combined with the fixed down, up, right, left neighbor order this makes every
//     run on identical input produce identical Open/Closed markings.
//  3. Pop the minimum. If it is end: mark the path cells, notify, return Success.
//  4. Relax each neighbor with tentative g+1. An improved neighbor records its
//     predecessor; if it is not already enqueued it is pushed and marked Open,
//     otherwise its priority is lowered in place.
//  5. Notify once per expansion, then mark the expanded cell Closed (start excepted).
//  6. An exhausted frontier yields Failure.
//
// Progress and cancellation:
//
//	The ProgressFunc runs inline on the calling goroutine after each expansion and after
//	each path cell is marked. Returning Cancel (or cancelling the context given through
//	WithContext) aborts the run with Outcome Aborted; the working set is discarded and
//	cells keep whatever marks they already received.
//
// Complexity:
//
//   - Time:  O(V log V) for V = rows² cells (each cell has ≤4 neighbors).
//   - Space: O(V) for scores, predecessors and the frontier.
//
// Errors (sentinel, all precondition violations; no-path is an Outcome, not an error):
//
//   - ErrNilGrid, ErrNilCell, ErrSameCell, ErrForeignCell.
//   - ErrStaleAdjacency, only when WithStaleCheck is set.
//   - ErrOptionViolation for invalid options.
package astar
