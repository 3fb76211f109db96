package main

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger writing to w. level takes the slog names
// (debug, info, warn, error); anything else logs at info. format "json"
// selects the JSON handler, everything else the text handler.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
