package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes beyond the usual 0/1/2.
const (
	exitUsage   = 2
	exitNoPath  = 3
	exitAborted = 4
)

// Config holds everything a single invocation needs.
type Config struct {
	ScenarioPath string
	Animate      bool
	Delay        time.Duration
	MaxSteps     int
	PNGPath      string
	CellPx       int
	MetricsPath  string
	LogFormat    string
	LogLevel     string
}

// parseArgs processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - shortest paths on a square grid, step by step.

Usage:
  gridpath [options] SCENARIO.hcl

Arguments:
  SCENARIO.hcl
    HCL file with size, start, end and barrier blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	animate := flagSet.Bool("animate", false, "Print an ASCII frame on every progress notification.")
	delay := flagSet.Duration("delay", 0, "Pause between animated frames.")
	maxSteps := flagSet.Int("max-steps", 0, "Cancel the search after this many notifications. 0 is unlimited.")
	pngPath := flagSet.String("png", "", "Write the final grid as PNG to this path.")
	cellPx := flagSet.Int("cell-px", 16, "Pixels per cell in the PNG output.")
	metricsPath := flagSet.String("metrics-file", "", "Write Prometheus metrics in text format to this path.")
	logFormat := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevel := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: exitUsage, Message: "exactly one scenario file is expected"}
	}

	cfg := &Config{
		ScenarioPath: flagSet.Arg(0),
		Animate:      *animate,
		Delay:        *delay,
		MaxSteps:     *maxSteps,
		PNGPath:      *pngPath,
		CellPx:       *cellPx,
		MetricsPath:  *metricsPath,
		LogFormat:    strings.ToLower(*logFormat),
		LogLevel:     strings.ToLower(*logLevel),
	}
	if err := cfg.validate(); err != nil {
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	return cfg, false, nil
}

func (c *Config) validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.MaxSteps < 0 {
		return errors.New("invalid max-steps: must not be negative")
	}
	if c.Delay < 0 {
		return errors.New("invalid delay: must not be negative")
	}
	if c.PNGPath != "" && c.CellPx <= 0 {
		return errors.New("invalid cell-px: must be positive")
	}

	return nil
}
