package kmeans

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSeed logs the end of k-means++ seeding.
func (l *Logger) LogSeed(ctx context.Context, duration time.Duration) {
	l.DebugContext(ctx, "seeding completed",
		"duration", duration,
	)
}

// LogRound logs one recalculate/assign round.
func (l *Logger) LogRound(ctx context.Context, iteration, moved int, duration time.Duration) {
	l.DebugContext(ctx, "round completed",
		"iteration", iteration,
		"moved", moved,
		"duration", duration,
	)
}

// LogFit logs the outcome of a clustering run.
func (l *Logger) LogFit(ctx context.Context, iterations int, converged bool, duration time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "clustering failed",
			"iterations", iterations,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "iteration limit reached before convergence",
			"iterations", iterations,
			"duration", duration,
		)
	default:
		l.InfoContext(ctx, "clustering converged",
			"iterations", iterations,
			"duration", duration,
		)
	}
}
