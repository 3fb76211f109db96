package grid

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors returned by grid operations.
var (
	// ErrInvalidSize indicates a row count outside 1..MaxRows.
	ErrInvalidSize = errors.New("grid: rows out of range")

	// ErrOutOfBounds indicates a Position that does not address any cell.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrInvalidClassification indicates Classify was called with a state other
	// than Start, End or Barrier.
	ErrInvalidClassification = errors.New("grid: classification must be start, end or barrier")
)

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position offset by (dr, dc). The result may be out of bounds.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Compare orders positions row-major: -1 if p sorts before q, +1 after, 0 if equal.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Row, q.Row); c != 0 {
		return c
	}

	return cmp.Compare(p.Col, q.Col)
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellState is the classification of a Cell. Exactly one state holds at a time.
type CellState int

const (
	// Empty is a free, unvisited cell.
	Empty CellState = iota
	// Start is the search origin (singleton per grid).
	Start
	// End is the search target (singleton per grid).
	End
	// Barrier is impassable and never appears in any neighbor list.
	Barrier
	// Open marks a cell currently enqueued in the search frontier.
	Open
	// Closed marks a cell whose expansion has finished.
	Closed
	// Path marks an intermediate cell of the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Start:   "start",
	End:     "end",
	Barrier: "barrier",
	Open:    "open",
	Closed:  "closed",
	Path:    "path",
}

// String returns the lower-case name of the state.
func (s CellState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("CellState(%d)", int(s))
	}

	return stateNames[s]
}

// IsMarking reports whether s is one of the search-progress marks.
func (s CellState) IsMarking() bool {
	switch s {
	case Open, Closed, Path:
		return true
	default:
		return false
	}
}
