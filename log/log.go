// Package log is the structured logger of the setup pipeline and its
// command. Records are JSON lines produced by log/slog. The kzg package
// does not log.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a slog.Logger carrying fixed attributes such as the module
// that emits the record.
type Logger struct {
	inner *slog.Logger
}

// NewWriter returns a Logger writing JSON records at or above level to w.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{inner: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return NewWriter(io.Discard, slog.LevelError+1)
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels,
// ignoring case and surrounding space. An empty name is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log: unknown level %q", s)
}

// Module tags every record of the returned logger with module=name.
func (l *Logger) Module(name string) *Logger {
	return l.With("module", name)
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
