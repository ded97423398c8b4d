package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// fileLogger logs JSON lines to a rotated file.
type fileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a file logger writing to filePath with rotation.
// maxSize is in megabytes, maxAge in days.
func NewFileLogger(level, filePath string, maxSize, maxBackups, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &fileLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *fileLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *fileLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *fileLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *fileLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}
