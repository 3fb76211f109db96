package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/session"
)

func newSession(t *testing.T, rows int, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(rows, opts...)
	require.NoError(t, err)

	return s
}

func TestNew_InvalidRows(t *testing.T) {
	_, err := session.New(0)
	assert.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestPlace_ClickSequence(t *testing.T) {
	s := newSession(t, 4)

	st, err := s.Place(grid.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Start, st)

	// Clicking Start again while End is unset does nothing.
	st, err = s.Place(grid.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Start, st)
	assert.Nil(t, s.End())

	st, _ = s.Place(grid.Pos(3, 3))
	assert.Equal(t, grid.End, st)

	st, _ = s.Place(grid.Pos(1, 1))
	assert.Equal(t, grid.Barrier, st)

	// Start and End are never turned into barriers.
	st, _ = s.Place(grid.Pos(3, 3))
	assert.Equal(t, grid.End, st)
	st, _ = s.Place(grid.Pos(0, 0))
	assert.Equal(t, grid.Start, st)

	assert.Equal(t, 1, s.Grid().Count(grid.Start))
	assert.Equal(t, 1, s.Grid().Count(grid.End))
	assert.True(t, s.Ready())

	_, err = s.Place(grid.Pos(4, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestErase_ReleasesSingletons(t *testing.T) {
	s := newSession(t, 4)
	_, _ = s.Place(grid.Pos(0, 0))
	_, _ = s.Place(grid.Pos(3, 3))

	require.NoError(t, s.Erase(grid.Pos(0, 0)))
	assert.Nil(t, s.Start())
	assert.False(t, s.Ready())

	// The next click becomes Start again, elsewhere.
	st, _ := s.Place(grid.Pos(2, 1))
	assert.Equal(t, grid.Start, st)
	assert.Equal(t, grid.Pos(2, 1), s.Start().Position())
	assert.Equal(t, 1, s.Grid().Count(grid.Start))

	require.NoError(t, s.Erase(grid.Pos(3, 3)))
	assert.Nil(t, s.End())

	// Erasing an Empty cell is a no-op.
	require.NoError(t, s.Erase(grid.Pos(1, 1)))
	assert.Equal(t, grid.Empty, s.Grid().At(1, 1).State())
}

func TestExplicitEdits(t *testing.T) {
	s := newSession(t, 4)
	require.NoError(t, s.SetStart(grid.Pos(0, 0)))
	require.NoError(t, s.SetEnd(grid.Pos(3, 3)))

	assert.ErrorIs(t, s.SetStart(grid.Pos(3, 3)), session.ErrOccupied)
	assert.ErrorIs(t, s.SetEnd(grid.Pos(0, 0)), session.ErrOccupied)
	assert.ErrorIs(t, s.SetBarrier(grid.Pos(0, 0)), session.ErrOccupied)

	// Moving Start resets the old cell.
	require.NoError(t, s.SetStart(grid.Pos(1, 0)))
	assert.Equal(t, grid.Empty, s.Grid().At(0, 0).State())
	assert.Equal(t, 1, s.Grid().Count(grid.Start))

	require.NoError(t, s.SetEnd(grid.Pos(2, 2)))
	assert.Equal(t, grid.Empty, s.Grid().At(3, 3).State())

	require.NoError(t, s.SetBarrier(grid.Pos(1, 1)))
	assert.True(t, s.Grid().At(1, 1).IsBarrier())
}

func TestRun_NotReady(t *testing.T) {
	s := newSession(t, 3)
	_, err := s.Run(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNotReady)

	require.NoError(t, s.SetStart(grid.Pos(0, 0)))
	_, err = s.Run(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNotReady)
}

func TestRun_RefreshesAfterBarrierEdits(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	s := newSession(t, 5,
		session.WithLogger(logger),
		session.WithMetrics(rec),
		session.WithSearchOptions(astar.WithStaleCheck()),
	)

	require.NoError(t, s.SetStart(grid.Pos(0, 0)))
	require.NoError(t, s.SetEnd(grid.Pos(4, 4)))

	res, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Steps())

	// Wall off row 2 except the last column, then rerun without manual refresh.
	for c := 0; c < 4; c++ {
		require.NoError(t, s.SetBarrier(grid.Pos(2, c)))
	}
	res, err = s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Contains(t, res.Positions(), grid.Pos(2, 4))
	assert.Equal(t, res.Steps()-1, s.Grid().Count(grid.Path), "marks from the first run are cleared")

	// Close the gap: no route remains.
	require.NoError(t, s.SetBarrier(grid.Pos(2, 4)))
	res, err = s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, astar.Failure, res.Outcome)

	assert.Contains(t, buf.String(), "session="+s.ID().String())
	assert.Contains(t, buf.String(), "outcome=failure")
	assert.Contains(t, buf.String(), "astar: search started")

	runs, err := testutil.GatherAndCount(reg, "gridpath_search_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, runs, "success and failure series")
}

func TestRun_CancelledContext(t *testing.T) {
	s := newSession(t, 6)
	require.NoError(t, s.SetStart(grid.Pos(0, 0)))
	require.NoError(t, s.SetEnd(grid.Pos(5, 5)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.Run(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, astar.Aborted, res.Outcome)
	assert.Equal(t, 1, res.Expanded)
}

func TestClear_ReplacesGrid(t *testing.T) {
	s := newSession(t, 4)
	_, _ = s.Place(grid.Pos(0, 0))
	_, _ = s.Place(grid.Pos(3, 3))
	_, _ = s.Place(grid.Pos(1, 1))
	before := s.Grid()

	s.Clear()

	assert.NotSame(t, before, s.Grid())
	assert.Equal(t, 4, s.Grid().Rows())
	assert.Equal(t, 16, s.Grid().Count(grid.Empty))
	assert.Nil(t, s.Start())
	assert.Nil(t, s.End())
	assert.False(t, s.Grid().Owns(before.At(0, 0)))
}
