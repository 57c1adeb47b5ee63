package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLoggerLevels(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
	}()

	testCases := []struct {
		name      string
		level     LogLevel
		wantDebug bool
	}{
		{
			name:      "Debug level logs debug messages",
			level:     LevelDebug,
			wantDebug: true,
		},
		{
			name:      "Info level suppresses debug messages",
			level:     LevelInfo,
			wantDebug: false,
		},
		{
			name:      "Warn level suppresses debug messages",
			level:     LevelWarn,
			wantDebug: false,
		},
		{
			name:      "Error level suppresses debug messages",
			level:     LevelError,
			wantDebug: false,
		},
		{
			name:      "Invalid level defaults to info",
			level:     LogLevel("invalid"),
			wantDebug: false,
		},
		{
			name:      "Empty level defaults to info",
			level:     LogLevel(""),
			wantDebug: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(&buf, tc.level)

			Debug("debug probe")
			Info("info probe")

			output := buf.String()
			if got := strings.Contains(output, "debug probe"); got != tc.wantDebug {
				t.Errorf("debug logged = %v, want %v (output: %s)", got, tc.wantDebug, output)
			}
			if !strings.Contains(output, "info probe") {
				t.Errorf("expected info message in output, got: %s", output)
			}
		})
	}
}

func TestLoggingIncludesKeyValuePairs(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelDebug)

	tests := []struct {
		name    string
		logFunc func(string, ...any)
		level   string
	}{
		{name: "Debug", logFunc: Debug, level: "DEBUG"},
		{name: "Info", logFunc: Info, level: "INFO"},
		{name: "Warn", logFunc: Warn, level: "WARN"},
		{name: "Error", logFunc: Error, level: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.logFunc("test message", "key", "value")

			output := buf.String()
			if !strings.Contains(strings.ToUpper(output), tc.level) {
				t.Errorf("expected level %s in output, got: %s", tc.level, output)
			}
			if !strings.Contains(output, "key=value") {
				t.Errorf("expected key-value pair in output, got: %s", output)
			}
		})
	}
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "<not set>",
		},
		{
			name:     "Short string",
			input:    "abc",
			expected: "<set>",
		},
		{
			name:     "Exactly 4 characters",
			input:    "abcd",
			expected: "<set>",
		},
		{
			name:     "Token-like string",
			input:    "ATATT3xFfGF0abcdef",
			expected: "ATAT...***",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MaskSensitive(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}
