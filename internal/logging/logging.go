// Package logging builds the slog loggers used by the schedsim CLI.
// Reports are written to stdout, so log records go to their own writer.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing records at or above level to w.
// format "json" selects the JSON handler; any other value gives key=value text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel accepts slog's level names in any case, with an optional offset
// such as "warn+2", and "warning". Anything else is LevelInfo.
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
