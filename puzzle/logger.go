package puzzle

import (
	"context"

	"go.uber.org/zap"
)

// loggerKey is unexported to avoid collisions with other context keys.
type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger extracts the logger stored by WithLogger. A context without one
// yields a no-op logger, so solvers may log unconditionally.
func Logger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	return zap.NewNop()
}
