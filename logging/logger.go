// Package logging wraps log/slog with a component field and the
// level/format selection used by the server and the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a slog.Logger that tags every record with its component.
type Logger struct {
	*slog.Logger
	base *slog.Logger
}

type Config struct {
	Level     string // debug, info, warn, error
	Format    string // text, json
	Component string
	Output    io.Writer
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "", "text", "console":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	component := cfg.Component
	if component == "" {
		component = "app"
	}
	base := slog.New(handler)
	return &Logger{
		Logger: base.With("component", component),
		base:   base,
	}, nil
}

// Discard returns a logger that drops every record. Used by tests.
func Discard() *Logger {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Logger{Logger: base, base: base}
}

// WithComponent returns a child logger for another component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.base.With("component", component),
		base:   l.base,
	}
}

// SetDefault makes l the process-wide slog default.
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
