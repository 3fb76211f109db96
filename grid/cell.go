package grid

import "fmt"

// Cell is the atomic grid unit. Cells are created and owned by a Grid;
// neighbor entries are non-owning references into the same Grid.
type Cell struct {
	pos       Position
	state     CellState
	neighbors []*Cell
	owner     *Grid
}

// Position returns the fixed address of the cell.
func (c *Cell) Position() Position { return c.pos }

// State returns the current classification.
func (c *Cell) State() CellState { return c.state }

// Neighbors returns the cached traversable neighbors in down, up, right, left
// order. The slice is shared; callers must not modify it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.state == End }

// String renders the cell as "(row,col):state".
func (c *Cell) String() string {
	return fmt.Sprintf("%s:%s", c.pos, c.state)
}

// Classify sets the cell to Start, End or Barrier.
// Any other state yields ErrInvalidClassification and leaves the cell untouched.
// The Start/End singleton invariant is the caller's to enforce.
func (c *Cell) Classify(kind CellState) error {
	switch kind {
	case Start, End, Barrier:
		c.setState(kind)
		return nil
	default:
		return fmt.Errorf("%w: got %s at %s", ErrInvalidClassification, kind, c.pos)
	}
}

// Reset returns the cell to Empty unconditionally. Resetting an Empty cell is a no-op.
func (c *Cell) Reset() { c.setState(Empty) }

// MarkOpen marks the cell as enqueued. It reports whether the mark was applied;
// Start, End and Barrier cells are never overwritten.
func (c *Cell) MarkOpen() bool { return c.mark(Open) }

// MarkClosed marks the cell as expanded. See MarkOpen for the guard.
func (c *Cell) MarkClosed() bool { return c.mark(Closed) }

// MarkPath marks the cell as part of the final path. See MarkOpen for the guard.
func (c *Cell) MarkPath() bool { return c.mark(Path) }

func (c *Cell) mark(s CellState) bool {
	switch c.state {
	case Start, End, Barrier:
		return false
	}
	c.state = s

	return true
}

// setState applies a collaborator edit and bumps the owner's barrier epoch
// whenever the cell enters or leaves Barrier.
func (c *Cell) setState(s CellState) {
	if (c.state == Barrier) != (s == Barrier) && c.owner != nil {
		c.owner.barrierEdits++
	}
	c.state = s
}

// neighborOffsets lists orthogonal moves in inclusion order: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// RefreshNeighbors recomputes the neighbor list against g. A candidate is
// included iff it is in bounds and not a Barrier.
func (c *Cell) RefreshNeighbors(g *Grid) {
	c.neighbors = c.neighbors[:0]
	for _, d := range neighborOffsets {
		n := g.At(c.pos.Row+d[0], c.pos.Col+d[1])
		if n == nil || n.IsBarrier() {
			continue
		}
		c.neighbors = append(c.neighbors, n)
	}
}
