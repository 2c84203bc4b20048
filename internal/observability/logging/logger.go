// Package logging provides structured logger construction using the
// standard library's log/slog package.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a structured logger with JSON output writing to w.
// The server passes os.Stderr: stdout is reserved for the MCP stdio
// transport and must never carry log lines.
func NewLogger(w io.Writer, level string) *slog.Logger {
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		// Add source code location for error and warn levels
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
