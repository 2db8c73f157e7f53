// Package logger builds the log/slog loggers used by the TextSummary service.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log format names
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LevelDisabled is above every level slog emits.
const LevelDisabled = slog.Level(100)

// Config holds configuration options for the logger
type Config struct {
	Level       string
	Format      string
	Output      io.Writer
	AddSource   bool
	DefaultTags map[string]interface{}
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:       "info",
		Format:      FormatText,
		Output:      os.Stderr,
		DefaultTags: map[string]interface{}{"service": "textsummary"},
	}
}

// New creates a new slog.Logger with the given configuration
func New(config *Config) *slog.Logger {
	if config == nil {
		config = DefaultConfig()
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, FormatJSON) {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	l := slog.New(handler)
	for k, v := range config.DefaultTags {
		l = l.With(k, v)
	}
	return l
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "DISABLED", "OFF":
		return LevelDisabled
	default:
		return slog.LevelInfo
	}
}

// Component returns l scoped to a named component. A nil l uses slog.Default().
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", name)
}

// Discard returns a logger that drops everything, for tests and quiet CLIs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: LevelDisabled}))
}
