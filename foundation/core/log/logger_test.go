// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level
//              filtering and foundation error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Correlation IDs, severity mapping, timers

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mlxerror "github.com/msto63/mLox/foundation/core/error"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "lox-scanner",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.Name() != "lox-scanner" {
		t.Errorf("NewWithConfig() name = %v, want lox-scanner", logger.Name())
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithMethodsAreImmutable(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug).WithField("component", "lox-parser").WithCorrelationID("run-1")

	if derived == logger {
		t.Fatal("With* should return a new logger instance")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}

	if _, ok := logger.contextFields["component"]; ok {
		t.Error("WithField() should not modify original logger")
	}

	if logger.correlationID != "" {
		t.Error("WithCorrelationID() should not modify original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", entries[0]["level"], entries[1]["level"])
	}

	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled(info) should be false at warn level")
	}
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf, Name: "lox-engine"}).
		WithField("component", "lox-engine").
		WithCorrelationID("abc-123")

	logger.Debug("Scan completed", Fields{"tokens": 5}, Field("lines", 2))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	entry := entries[0]
	checks := map[string]interface{}{
		"message":        "Scan completed",
		"logger":         "lox-engine",
		"component":      "lox-engine",
		"correlation_id": "abc-123",
		"tokens":         float64(5),
		"lines":          float64(2),
	}
	for key, want := range checks {
		if entry[key] != want {
			t.Errorf("%s = %v, want %v", key, entry[key], want)
		}
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       mlxerror.New("Unexpected character '@'.").WithCode(mlxerror.CodeInvalidCharacter),
			wantLevel: "info",
			wantCode:  "LOX_INVALID_CHARACTER",
		},
		{
			name:      "medium severity logs at warn",
			err:       mlxerror.New("too deep").WithCode(mlxerror.CodeNestingTooDeep),
			wantLevel: "warn",
			wantCode:  "LOX_NESTING_TOO_DEEP",
		},
		{
			name:      "high severity logs at error",
			err:       mlxerror.New("bad config").WithCode(mlxerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "standard error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})

			logger.LogError(tt.err)

			entries := decodeLines(t, &buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}

	var buf bytes.Buffer
	NewWithConfig(Config{Output: &buf}).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if logger.IsLevelEnabled(level) {
			t.Errorf("Discard() logger should not enable %v", level)
		}
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	timer := logger.StartTimer("scan").WithField("bytes", 12)
	timer.Stop()
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	failing := logger.StartTimer("parse")
	failing.StopWithError(errors.New("Expect expression."))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0]["message"] != "scan completed" || entries[0]["operation"] != "scan" {
		t.Errorf("unexpected completion entry: %v", entries[0])
	}
	if entries[0]["bytes"] != float64(12) {
		t.Errorf("bytes = %v, want 12", entries[0]["bytes"])
	}

	if entries[1]["message"] != "parse failed" || entries[1]["level"] != "warn" {
		t.Errorf("unexpected failure entry: %v", entries[1])
	}
	if entries[1]["error"] != "Expect expression." {
		t.Errorf("error = %v", entries[1]["error"])
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf}))

	Info("hello from default")

	if !strings.Contains(buf.String(), "hello from default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
