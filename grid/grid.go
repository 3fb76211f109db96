package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a fixed-size rows×rows matrix of Cells addressed by Position.
type Grid struct {
	rows  int
	cells []Cell // row-major, never resized so &cells[i] stays valid

	barrierEdits uint64 // bumped on every transition into or out of Barrier
	refreshedAt  uint64 // barrierEdits observed by the last RefreshAllNeighbors
	refreshed    bool
}

// MaxRows is the largest side length New accepts.
const MaxRows = 1 << 11

// New builds a rows×rows grid of Empty cells.
// Returns ErrInvalidSize if rows ≤ 0 or rows > MaxRows.
// Complexity: O(rows²) time and memory.
func New(rows int) (*Grid, error) {
	if rows <= 0 || rows > MaxRows {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidSize, rows, MaxRows)
	}
	g := &Grid{
		rows:  rows,
		cells: make([]Cell, rows*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			cell := &g.cells[g.index(r, c)]
			cell.pos = Position{Row: r, Col: c}
			cell.owner = g
		}
	}

	return g, nil
}

// Rows returns the side length of the grid.
func (g *Grid) Rows() int { return g.rows }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// index maps (row, col) to the row-major slot.
func (g *Grid) index(row, col int) int { return row*g.rows + col }

// InBounds reports whether p addresses a cell of g.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.rows {
		return nil
	}

	return &g.cells[g.index(row, col)]
}

// Cell returns the cell at p or ErrOutOfBounds.
func (g *Grid) Cell(p Position) (*Cell, error) {
	c := g.At(p.Row, p.Col)
	if c == nil {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.rows)
	}

	return c, nil
}

// Owns reports whether c is one of g's cells.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.owner == g
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].state == s {
			n++
		}
	}

	return n
}

// RefreshAllNeighbors recomputes every cell's neighbor list.
// Must be called after Barrier edits and before each search run.
func (g *Grid) RefreshAllNeighbors() {
	for i := range g.cells {
		g.cells[i].RefreshNeighbors(g)
	}
	g.refreshedAt = g.barrierEdits
	g.refreshed = true
}

// Stale reports whether a Barrier edit happened since the last
// RefreshAllNeighbors, or no refresh has happened yet. Debug aid only.
func (g *Grid) Stale() bool {
	return !g.refreshed || g.barrierEdits != g.refreshedAt
}

// ClearSearch returns every Open, Closed and Path cell to Empty, leaving
// Start, End and Barrier in place.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		if g.cells[i].state.IsMarking() {
			g.cells[i].state = Empty
		}
	}
}

// Reachable returns the set of cells reachable from `from` by following the
// cached neighbor lists, `from` included. Lists must be current.
// Complexity: O(R²) time and memory.
func (g *Grid) Reachable(from *Cell) mapset.Set[*Cell] {
	seen := mapset.New[*Cell]()
	if !g.Owns(from) {
		return seen
	}
	queue := []*Cell{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range queue[qi].neighbors {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}

	return seen
}
