package logger

import (
	"log/slog"
	"os"
)

// consoleLogger logs human-readable text lines to stdout.
type consoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger with the given minimum level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &consoleLogger{logger: slog.New(handler)}
}

// Debug logs a debug message to the console.
func (l *consoleLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message to the console.
func (l *consoleLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message to the console.
func (l *consoleLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message to the console.
func (l *consoleLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}
