package logger

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseLevelRejects(t *testing.T) {
	// Matching is strict and case-sensitive
	for _, input := range []string{"DEBUG", "Info", "warning", "trace", "bogus", "", " info"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLevel(input)
			if err == nil {
				t.Fatalf("ParseLevel(%q) succeeded, want error", input)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("ParseLevel(%q) error is %T, want *ConfigError", input, err)
			}
			if cfgErr.Value != input {
				t.Errorf("ConfigError.Value = %q, want %q", cfgErr.Value, input)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LogLevelDebug < LogLevelInfo && LogLevelInfo < LogLevelWarn && LogLevelWarn < LogLevelError) {
		t.Error("Level ordering must be debug < info < warn < error")
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, result, tt.expected)
			}
		})
	}
}
