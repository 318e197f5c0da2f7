// Package logger provides structured logging for the console and the dev
// service. The console writes to a file because the terminal belongs to the
// TUI; the dev service writes to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging.
type Logger struct {
	*slog.Logger
}

// New creates a text logger writing to w at the given level name.
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(handler)}, nil
}

// Open creates a logger appending to the file at path. The caller closes the
// returned file on exit.
func Open(path, level string) (*Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps "debug", "info", "warn", "error" (any case) to a slog.Level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// With returns a logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// OperationFailed logs a failed call to a remote service.
func (l *Logger) OperationFailed(op, offerID, kind string, status int, err error) {
	attrs := []any{
		slog.String("op", op),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	}
	if offerID != "" {
		attrs = append(attrs, slog.String("offer_id", offerID))
	}
	if status != 0 {
		attrs = append(attrs, slog.Int("status", status))
	}
	l.Error("operation_failed", attrs...)
}

// OperationSucceeded logs a completed call to a remote service.
func (l *Logger) OperationSucceeded(op, offerID string) {
	if offerID == "" {
		l.Debug("operation_succeeded", slog.String("op", op))
		return
	}
	l.Debug("operation_succeeded", slog.String("op", op), slog.String("offer_id", offerID))
}

// HTTPRequest logs an HTTP request served by the dev service.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, requestID string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("request_id", requestID),
	)
}
