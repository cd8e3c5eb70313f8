package attrib

import (
	"log/slog"
	"os"

	"github.com/hupe1980/attrib/value"
)

// Logger wraps slog.Logger with attribute store context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMode adds a store mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogSet logs a completed set.
func (l *Logger) LogSet(name string, typ value.Type, count int, replaced bool) {
	l.Debug("attribute set",
		"name", name,
		"type", typ.String(),
		"count", count,
		"replaced", replaced,
	)
}

// LogUnset logs an unset.
func (l *Logger) LogUnset(name string, found bool) {
	l.Debug("attribute unset",
		"name", name,
		"found", found,
	)
}

// LogRemoveAll logs a bulk removal.
func (l *Logger) LogRemoveAll(removed int) {
	l.Debug("attributes removed",
		"removed", removed,
	)
}

// LogViolation logs a rejected operation.
func (l *Logger) LogViolation(op string, err error) {
	l.Warn("attribute operation rejected",
		"op", op,
		"error", err,
	)
}
