package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for invalid invocations.
var (
	// ErrNilGrid is returned when the grid pointer is nil.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilCell is returned when start or end is nil.
	ErrNilCell = errors.New("astar: start and end must be set")

	// ErrSameCell is returned when start and end are the same cell.
	ErrSameCell = errors.New("astar: start and end must differ")

	// ErrForeignCell is returned when start or end does not belong to the grid.
	ErrForeignCell = errors.New("astar: cell does not belong to grid")

	// ErrStaleAdjacency is returned under WithStaleCheck when barriers changed
	// after the last grid.RefreshAllNeighbors.
	ErrStaleAdjacency = errors.New("astar: neighbor lists are stale")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Signal is what a ProgressFunc asks the engine to do next.
type Signal int

const (
	// Continue lets the search proceed.
	Continue Signal = iota
	// Cancel aborts the search at this point.
	Cancel
)

// ProgressFunc is called synchronously after each visible state change.
// A nil ProgressFunc always continues.
type ProgressFunc func() Signal

// Outcome classifies how a search run ended.
type Outcome int

const (
	// Success means end was reached; Result.Path holds the route.
	Success Outcome = iota
	// Failure means the frontier emptied without reaching end.
	Failure
	// Aborted means cancellation was requested through progress or context.
	Aborted
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one search run.
//
//   - Path: start..end inclusive on Success, nil otherwise.
//   - Expanded: cells popped from the frontier.
//   - Opened: cells pushed onto the frontier, start excluded.
type Result struct {
	Outcome  Outcome
	Path     []*grid.Cell
	Expanded int
	Opened   int
}

// Found reports whether the run succeeded.
func (r Result) Found() bool { return r.Outcome == Success }

// Steps returns the number of moves along Path, or 0 when no path exists.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Positions returns the positions along Path.
func (r Result) Positions() []grid.Position {
	out := make([]grid.Position, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Position()
	}

	return out
}

// Options configures a search run.
type Options struct {
	// Ctx is checked at every progress point; cancellation yields Aborted.
	Ctx context.Context

	// Logger receives debug records for run start and finish.
	Logger *slog.Logger

	// Heuristic estimates remaining cost. Must be admissible for optimal paths.
	Heuristic Heuristic

	// StaleCheck rejects runs whose grid has barrier edits newer than its
	// last neighbor refresh.
	StaleCheck bool

	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - a logger that discards everything
//   - Manhattan heuristic
//   - no stale-adjacency check
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Heuristic: Manhattan,
	}
}

// WithContext sets a context whose cancellation aborts the run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil h is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithStaleCheck enables the debug-only adjacency staleness check.
func WithStaleCheck() Option {
	return func(o *Options) {
		o.StaleCheck = true
	}
}
