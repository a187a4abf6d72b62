package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific helpers.
//
// The Bitset itself never logs: diagnostics such as skipped tokens or
// rejected ranges are returned as errors. Logger turns those errors into
// structured records with consistent field names.
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

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogParse logs the outcome of Parse: one warning per skipped token and a
// summary record.
func (l *Logger) LogParse(ctx context.Context, members int, err error) {
	skipped := TokenErrors(err)
	for _, te := range skipped {
		l.WarnContext(ctx, "skipped unparseable token",
			"pos", te.Pos,
			"token", te.Token,
			"error", te.Err,
		)
	}

	if len(skipped) > 0 {
		l.WarnContext(ctx, "parse completed with skipped tokens",
			"members", members,
			"skipped", len(skipped),
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"members", members,
		)
	}
}

// LogRange logs a range operation.
func (l *Logger) LogRange(ctx context.Context, op string, start, end uint, err error) {
	if err != nil {
		l.WarnContext(ctx, "range operation rejected",
			"op", op,
			"start", start,
			"end", end,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "range operation completed",
			"op", op,
			"start", start,
			"end", end,
		)
	}
}

// LogAlgebra logs a set-algebra operation and the resulting cardinality.
func (l *Logger) LogAlgebra(ctx context.Context, op string, left, right, result int) {
	l.DebugContext(ctx, "set operation completed",
		"op", op,
		"left", left,
		"right", right,
		"result", result,
	)
}
