package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/session"
)

// main is the entrypoint for the gridpath tool.
func main() {
	// Interrupt cancels the search at its next progress notification.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sc, err := scenario.LoadFile(ctx, cfg.ScenarioPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	s, err := sc.Session(
		session.WithLogger(logger),
		session.WithMetrics(metrics.NewRecorder(reg)),
	)
	if err != nil {
		return err
	}

	res, err := s.Run(ctx, progress(ctx, cfg, s, outW))
	if err != nil {
		return err
	}

	if err := render.WriteText(outW, s.Grid()); err != nil {
		return err
	}
	fmt.Fprintf(outW, "outcome=%s steps=%d expanded=%d opened=%d\n",
		res.Outcome, res.Steps(), res.Expanded, res.Opened)

	if cfg.PNGPath != "" {
		if err := render.SavePNG(cfg.PNGPath, s.Grid(), cfg.CellPx); err != nil {
			return err
		}
		logger.Info("PNG written", "path", cfg.PNGPath)
	}
	if cfg.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsPath, reg); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", cfg.MetricsPath, err)
		}
	}

	switch res.Outcome {
	case astar.Failure:
		return &ExitError{Code: exitNoPath, Message: "no path found"}
	case astar.Aborted:
		return &ExitError{Code: exitAborted, Message: "search aborted"}
	}

	return nil
}

// progress builds the per-notification callback: optional animation, optional
// notification budget, and a pause that gives up early on cancellation.
func progress(ctx context.Context, cfg *Config, s *session.Session, outW io.Writer) astar.ProgressFunc {
	logger := ctxlog.FromContext(ctx)
	steps := 0

	return func() astar.Signal {
		steps++
		if cfg.Animate {
			fmt.Fprintf(outW, "step %d\n", steps)
			if err := render.WriteText(outW, s.Grid()); err != nil {
				logger.Warn("Frame write failed.", "error", err)
			}
			fmt.Fprintln(outW)
		}
		if cfg.MaxSteps > 0 && steps >= cfg.MaxSteps {
			logger.Info("Notification budget exhausted.", "max_steps", cfg.MaxSteps)
			return astar.Cancel
		}
		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return astar.Cancel
			case <-time.After(cfg.Delay):
			}
		}

		return astar.Continue
	}
}
