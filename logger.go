package fuzzgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fuzzgo-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithNeedleLen adds a needle length field to the logger.
func (l *Logger) WithNeedleLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("needle_len", n),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogMatch logs a match query.
func (l *Logger) LogMatch(ctx context.Context, needleLen, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "match failed",
			"needle_len", needleLen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "match completed",
			"needle_len", needleLen,
			"results", resultsFound,
		)
	}
}

// LogIngest logs a candidate list load.
func (l *Logger) LogIngest(ctx context.Context, source string, lines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "ingest completed",
			"source", source,
			"lines", lines,
		)
	}
}
