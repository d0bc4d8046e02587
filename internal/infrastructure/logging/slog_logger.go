package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/renaspress/renaspress-backend/internal/domain/ports"
)

// SlogLogger implements ports.Logger with the standard library's slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger writes JSON records to stdout.
func NewSlogLogger(level string) ports.Logger {
	return NewSlogLoggerTo(os.Stdout, level)
}

// NewSlogLoggerTo writes JSON records to w.
func NewSlogLoggerTo(w io.Writer, level string) ports.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return &SlogLogger{logger: slog.New(handler)}
}

// NewDiscardLogger drops every record. Used by tests.
func NewDiscardLogger() ports.Logger {
	return NewSlogLoggerTo(io.Discard, "error")
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
