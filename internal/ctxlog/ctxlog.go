// Package ctxlog carries a slog.Logger through context.Context, so every
// layer logs with the attributes its caller established.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entries collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger carried by ctx. Contexts without one get
// the process-default logger, which keeps library entry points usable with
// a bare context.Background().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
