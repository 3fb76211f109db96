// Package ctxlog attaches the run's *slog.Logger to a context.Context so the
// CLI, sessions and scenario loading log through one handler.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey struct{}

// discard serves callers whose context carries no logger.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a child of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by WithLogger. A missing or nil
// logger yields one that drops every record.
func FromContext(ctx context.Context) *slog.Logger {
	l, _ := ctx.Value(ctxKey{}).(*slog.Logger)
	if l == nil {
		return discard
	}

	return l
}
