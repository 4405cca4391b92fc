package obs

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// WithLogger stores a request-scoped logger.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// Logger returns the logger stored by WithLogger, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && log != nil {
		return log
	}
	return zap.NewNop()
}
