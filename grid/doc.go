// Package grid models a square board of cells for unit-cost shortest-path search.
//
// What:
//
//   - Position is an immutable (row, col) address with structural equality and
//     row-major ordering.
//   - Cell holds its Position, exactly one CellState and a cached list of
//     traversable orthogonal neighbors.
//   - Grid owns a fixed rows×rows matrix of Cells. The Position→Cell mapping is
//     total and never reindexed; resizing means building a new Grid.
//
// Neighbor derivation:
//
//   - RefreshNeighbors recomputes a Cell's neighbor list from the up-to-four
//     in-bounds orthogonal cells that are not Barrier.
//   - Inclusion order is fixed: down, up, right, left. Search engines rely on it
//     for deterministic tie-breaking, so it is part of the contract.
//   - Lists are NOT maintained incrementally. After any Barrier edit the caller
//     must call Grid.RefreshAllNeighbors before the next search; Stale reports
//     whether that was forgotten (debug aid only).
//
// State transitions:
//
//   - Classify(Start|End|Barrier) and Reset are collaborator edits. Singleton
//     Start/End is the collaborator's invariant, not enforced here.
//   - MarkOpen, MarkClosed and MarkPath are search-progress marks. They never
//     overwrite Start, End or Barrier.
//
// Complexity:
//
//   - New:                 O(R²) time and memory.
//   - RefreshAllNeighbors: O(R²).
//   - Reachable:           O(R²) time, O(R²) memory.
//
// Errors:
//
//   - ErrInvalidSize:           rows must be positive.
//   - ErrOutOfBounds:           Position outside the grid.
//   - ErrInvalidClassification: Classify accepts only Start, End or Barrier.
package grid
