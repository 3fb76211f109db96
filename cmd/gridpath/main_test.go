package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gapWall = `
size  = 5
start = [0, 0]
end   = [size - 1, size - 1]

barrier "wall" {
  from = [2, 0]
  to   = [2, 3]
}
`

const enclosed = `
size  = 4
start = [0, 0]
end   = [3, 3]

barrier "top" {
  from = [2, 3]
}

barrier "left" {
  from = [3, 2]
}
`

func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)

	return exitErr.Code
}

func TestRun_Success(t *testing.T) {
	path := writeScenario(t, gapWall)
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs, []string{"-log-level", "info", path})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "####*\n")
	assert.Contains(t, out.String(), "outcome=success steps=8")
	assert.Contains(t, logs.String(), "search finished")
}

func TestRun_AnimateAndExports(t *testing.T) {
	path := writeScenario(t, gapWall)
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "out.png")
	metricsPath := filepath.Join(dir, "metrics.prom")
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs, []string{
		"-animate", "-png", pngPath, "-cell-px", "4", "-metrics-file", metricsPath, "-log-format", "json", path,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "step 1\n")
	assert.Greater(t, strings.Count(out.String(), "step "), 10)

	_, err = os.Stat(pngPath)
	assert.NoError(t, err)
	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `gridpath_search_runs_total{outcome="success"} 1`)
}

func TestRun_NoPath(t *testing.T) {
	path := writeScenario(t, enclosed)
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs, []string{path})
	assert.Equal(t, exitNoPath, exitCode(t, err))
	assert.Contains(t, out.String(), "outcome=failure")
}

func TestRun_MaxStepsAborts(t *testing.T) {
	path := writeScenario(t, gapWall)
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs, []string{"-max-steps", "2", path})
	assert.Equal(t, exitAborted, exitCode(t, err))
	assert.Contains(t, out.String(), "outcome=aborted steps=0 expanded=2")
}

func TestRun_CancelledContextAborts(t *testing.T) {
	path := writeScenario(t, gapWall)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, logs bytes.Buffer

	err := run(ctx, &out, &logs, []string{path})
	assert.Equal(t, exitAborted, exitCode(t, err))
}

func TestRun_UsageAndErrors(t *testing.T) {
	var out, logs bytes.Buffer

	// No scenario: usage and clean exit.
	require.NoError(t, run(context.Background(), &out, &logs, nil))
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	require.NoError(t, run(context.Background(), &out, &logs, []string{"-h"}))

	err := run(context.Background(), &out, &logs, []string{"-log-level", "loud", "x.hcl"})
	assert.Equal(t, exitUsage, exitCode(t, err))

	err = run(context.Background(), &out, &logs, []string{"-log-format", "xml", "x.hcl"})
	assert.Equal(t, exitUsage, exitCode(t, err))

	err = run(context.Background(), &out, &logs, []string{"-max-steps", "-1", "x.hcl"})
	assert.Equal(t, exitUsage, exitCode(t, err))

	err = run(context.Background(), &out, &logs, []string{"a.hcl", "b.hcl"})
	assert.Equal(t, exitUsage, exitCode(t, err))

	err = run(context.Background(), &out, &logs, []string{"-bogus"})
	assert.Equal(t, exitUsage, exitCode(t, err))

	err = run(context.Background(), &out, &logs, []string{filepath.Join(t.TempDir(), "missing.hcl")})
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger("unknown", "text", &buf).Info("default-info")
	assert.Contains(t, buf.String(), "msg=default-info")
}

func TestNewLogger_AllLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for name, want := range cases {
		l := newLogger(name, "text", io.Discard)
		assert.True(t, l.Enabled(context.Background(), want), name)
		assert.False(t, l.Enabled(context.Background(), want-1), name)
	}
}
