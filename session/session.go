package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Sentinel errors returned by Session operations.
var (
	// ErrNotReady indicates Run was called before both Start and End were placed.
	ErrNotReady = errors.New("session: start and end must both be placed")

	// ErrOccupied indicates an explicit edit targeted a Start or End cell that
	// it may not overwrite.
	ErrOccupied = errors.New("session: cell is occupied by start or end")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. It is also attached to the context
// passed to Run so the engine and callbacks share it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records every Run on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Session) {
		s.metrics = rec
	}
}

// WithSearchOptions appends engine options applied to every Run.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(s *Session) {
		s.searchOpts = append(s.searchOpts, opts...)
	}
}

// Session is the top-level owner of a grid and its endpoints.
// It is not safe for concurrent use.
type Session struct {
	id         uuid.UUID
	rows       int
	grid       *grid.Grid
	start, end *grid.Cell

	logger     *slog.Logger
	metrics    *metrics.Recorder
	searchOpts []astar.Option
}

// New creates a session over a fresh rows×rows grid.
func New(rows int, opts ...Option) (*Session, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:     uuid.New(),
		rows:   rows,
		grid:   g,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id.String())
	s.logger.Debug("session created", "rows", rows)

	return s, nil
}

// ID returns the session identifier used in log records.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the current grid. It is replaced by Clear.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Start returns the Start cell, or nil if unset.
func (s *Session) Start() *grid.Cell { return s.start }

// End returns the End cell, or nil if unset.
func (s *Session) End() *grid.Cell { return s.end }

// Ready reports whether both endpoints are placed.
func (s *Session) Ready() bool { return s.start != nil && s.end != nil }

// Place applies a primary click at p: the first click places Start, the next
// places End, every later one places a Barrier. Clicks on the Start or End
// cell leave it as is. It returns the resulting state.
func (s *Session) Place(p grid.Position) (grid.CellState, error) {
	c, err := s.grid.Cell(p)
	if err != nil {
		return grid.Empty, err
	}
	switch {
	case s.start == nil && c != s.end:
		s.assignStart(c)
	case s.end == nil && c != s.start:
		s.assignEnd(c)
	case c != s.start && c != s.end:
		_ = c.Classify(grid.Barrier) // never fails for Barrier
	}

	return c.State(), nil
}

// Erase applies a secondary click at p: the cell is reset and, if it held
// Start or End, that singleton becomes unset.
func (s *Session) Erase(p grid.Position) error {
	c, err := s.grid.Cell(p)
	if err != nil {
		return err
	}
	c.Reset()
	switch c {
	case s.start:
		s.start = nil
	case s.end:
		s.end = nil
	}

	return nil
}

// SetStart moves Start to p, resetting the previous Start cell.
// Returns ErrOccupied if p holds End.
func (s *Session) SetStart(p grid.Position) error {
	c, err := s.grid.Cell(p)
	if err != nil {
		return err
	}
	if c == s.end {
		return fmt.Errorf("%w: %s is end", ErrOccupied, p)
	}
	s.assignStart(c)

	return nil
}

// SetEnd moves End to p, resetting the previous End cell.
// Returns ErrOccupied if p holds Start.
func (s *Session) SetEnd(p grid.Position) error {
	c, err := s.grid.Cell(p)
	if err != nil {
		return err
	}
	if c == s.start {
		return fmt.Errorf("%w: %s is start", ErrOccupied, p)
	}
	s.assignEnd(c)

	return nil
}

// SetBarrier marks p impassable. Returns ErrOccupied on Start or End.
func (s *Session) SetBarrier(p grid.Position) error {
	c, err := s.grid.Cell(p)
	if err != nil {
		return err
	}
	if c == s.start || c == s.end {
		return fmt.Errorf("%w: %s", ErrOccupied, p)
	}

	return c.Classify(grid.Barrier)
}

func (s *Session) assignStart(c *grid.Cell) {
	if s.start != nil && s.start != c {
		s.start.Reset()
	}
	_ = c.Classify(grid.Start) // never fails for Start
	s.start = c
}

func (s *Session) assignEnd(c *grid.Cell) {
	if s.end != nil && s.end != c {
		s.end.Reset()
	}
	_ = c.Classify(grid.End) // never fails for End
	s.end = c
}

// Clear replaces the grid wholesale with a fresh one of the same size and
// unsets both endpoints.
func (s *Session) Clear() {
	g, _ := grid.New(s.rows) // rows was validated by New
	s.grid = g
	s.start, s.end = nil, nil
	s.logger.Debug("session cleared")
}

// Run searches from Start to End. Marks from a previous run are cleared and
// all neighbor lists are refreshed first. ctx cancellation aborts the run at
// the next progress point; onProgress may also return astar.Cancel.
func (s *Session) Run(ctx context.Context, onProgress astar.ProgressFunc) (astar.Result, error) {
	if !s.Ready() {
		return astar.Result{}, ErrNotReady
	}
	ctx = ctxlog.WithLogger(ctx, s.logger)
	logger := ctxlog.FromContext(ctx)

	s.grid.ClearSearch()
	s.grid.RefreshAllNeighbors()

	opts := append([]astar.Option{
		astar.WithContext(ctx),
		astar.WithLogger(logger),
	}, s.searchOpts...)

	began := time.Now()
	res, err := astar.Search(s.grid, s.start, s.end, onProgress, opts...)
	if err != nil {
		logger.Error("search rejected", "error", err)
		return res, fmt.Errorf("session: run: %w", err)
	}
	elapsed := time.Since(began)
	s.metrics.ObserveRun(res.Outcome.String(), res.Expanded, elapsed)

	logger.Info("search finished",
		"outcome", res.Outcome.String(),
		"steps", res.Steps(),
		"expanded", res.Expanded,
		"opened", res.Opened,
		"elapsed", elapsed,
	)

	return res, nil
}
