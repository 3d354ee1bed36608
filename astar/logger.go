package astar

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hexastar/hexgrid"
)

// Logger wraps slog.Logger with search-specific helpers and consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
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

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// LogSearch records a finished search.
func (l *Logger) LogSearch(ctx context.Context, start, goal hexgrid.Pos, found bool, cost float64, expanded, pathLen int) {
	if !found {
		l.DebugContext(ctx, "search found no path",
			"start", start.String(),
			"goal", goal.String(),
			"expanded", expanded,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"start", start.String(),
		"goal", goal.String(),
		"cost", cost,
		"expanded", expanded,
		"path_len", pathLen,
	)
}
