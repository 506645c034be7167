package crcgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with crcgo-specific context.
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

// WithWidth adds a CRC width field to the logger.
func (l *Logger) WithWidth(width uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogCalibrationPass logs a single timed calibration run.
func (l *Logger) LogCalibrationPass(strategy Strategy, elapsed time.Duration) {
	l.Debug("calibration pass completed",
		"strategy", strategy.String(),
		"elapsed", elapsed,
	)
}

// LogCalibrationResult logs the outcome of a calibration.
func (l *Logger) LogCalibrationResult(winner Strategy, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("calibration failed",
			"error", err,
		)
	} else {
		l.Debug("calibration completed",
			"winner", winner.String(),
			"elapsed", elapsed,
		)
	}
}
