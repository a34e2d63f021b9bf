package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line is not valid JSON: %v\n%s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger(t *testing.T) {
	t.Run("creates log file when File is set", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "nested", "alignby.log")

		logger, err := NewLogger(Options{Level: LevelDebug, File: logPath})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("writes to Stderr when File is empty", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(Options{Level: LevelInfo, Stderr: &buf})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if logger.writer != nil {
			t.Error("expected no file writer when File is empty")
		}

		logger.Info("hello")
		if !strings.Contains(buf.String(), `"msg":"hello"`) {
			t.Errorf("expected entry on stderr writer, got %q", buf.String())
		}
	})

	t.Run("defaults to INFO level for invalid level string", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(Options{Level: "loud", Stderr: &buf})
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}

		logger.Debug("hidden")
		logger.Info("shown")

		entries := decodeLines(t, buf.Bytes())
		if len(entries) != 1 || entries[0]["msg"] != "shown" {
			t.Errorf("expected only the INFO entry, got %v", entries)
		}
	})
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: LevelDebug, Stderr: &buf})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	entries := decodeLines(t, buf.Bytes())
	if len(entries) != 4 {
		t.Fatalf("expected 4 log lines, got %d", len(entries))
	}

	expectedLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	expectedMsgs := []string{"debug message", "info message", "warn message", "error message"}

	for i, entry := range entries {
		if entry["level"] != expectedLevels[i] {
			t.Errorf("line %d: expected level %s, got %v", i, expectedLevels[i], entry["level"])
		}
		if entry["msg"] != expectedMsgs[i] {
			t.Errorf("line %d: expected msg %s, got %v", i, expectedMsgs[i], entry["msg"])
		}
		if entry["key"] != "value" {
			t.Errorf("line %d: expected key=value, got key=%v", i, entry["key"])
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: "warn", Stderr: &buf})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if entries := decodeLines(t, buf.Bytes()); len(entries) != 2 {
		t.Fatalf("expected 2 log lines (WARN and ERROR only), got %d: %s", len(entries), buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: LevelInfo, Stderr: &buf})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.With("mode", "tail", "count", 42, 7, "ignored")
	child.Info("test message", "extra", "data")

	if logger.With() != logger {
		t.Error("With() with no args should return the same logger")
	}

	entries := decodeLines(t, buf.Bytes())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]

	if entry["mode"] != "tail" {
		t.Errorf("expected mode=tail, got %v", entry["mode"])
	}
	// JSON numbers are float64
	if entry["count"] != float64(42) {
		t.Errorf("expected count=42, got %v", entry["count"])
	}
	if entry["extra"] != "data" {
		t.Errorf("expected extra=data, got %v", entry["extra"])
	}
}

func TestClose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "alignby.log")
	logger, err := NewLogger(Options{Level: LevelInfo, File: logPath})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.With("run", 1).Info("before close")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op.
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "before close") {
		t.Errorf("log file missing entry: %s", content)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Should not panic
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.With("key", "value").Info("child")

	if err := logger.Close(); err != nil {
		t.Errorf("NopLogger.Close() returned error: %v", err)
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(levels))
	}
	for _, level := range levels {
		if parseLevel(level).String() != level {
			t.Errorf("parseLevel(%q) = %v", level, parseLevel(level))
		}
	}
}
