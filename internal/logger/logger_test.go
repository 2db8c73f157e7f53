package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	// Create a buffer to capture log output
	var buf bytes.Buffer

	logger := New(&Config{
		Level:       "debug",
		Format:      FormatText,
		Output:      &buf,
		DefaultTags: map[string]interface{}{"test": true},
	})

	logger.Debug("This is a debug message")
	if !strings.Contains(buf.String(), "level=DEBUG") || !strings.Contains(buf.String(), "This is a debug message") {
		t.Errorf("Expected debug message in log output, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "test=true") {
		t.Errorf("Expected default tag in log output, got: %s", buf.String())
	}

	buf.Reset()
	Component(logger, "testComponent").Warn("This is a warning")
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "component=testComponent") {
		t.Errorf("Expected component warning in log output, got: %s", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Output: &buf})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got: %s", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected error message in log output, got: %s", buf.String())
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: "JSON", Output: &buf})

	logger.Info("json message", "key", "value")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log output, got: %s (%v)", buf.String(), err)
	}
	if entry["msg"] != "json message" || entry["key"] != "value" {
		t.Errorf("Unexpected JSON log entry: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"disabled", LevelDisabled},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Discard() logger is enabled for errors")
	}
}
