package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogEntry is the wire shape of a JSON log line.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Logger    string `json:"logger"`
	Message   string `json:"message"`
}

// JSONLogger writes one LogEntry per line, for machine consumption.
type JSONLogger struct {
	mu    sync.RWMutex
	level LogLevel
	out   io.Writer
	name  string
}

// NewJSONLogger creates a JSON logger writing to stdout at info level
func NewJSONLogger(name string) *JSONLogger {
	return &JSONLogger{
		level: LogLevelInfo,
		out:   os.Stdout,
		name:  name,
	}
}

// Name returns the logger name
func (l *JSONLogger) Name() string {
	return l.name
}

// SetLevel sets the minimum level
func (l *JSONLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum level
func (l *JSONLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput sets the output writer
func (l *JSONLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// log marshals and writes a single entry. A record that cannot be marshalled
// is reported on stderr and dropped rather than corrupting the stream.
func (l *JSONLogger) log(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Logger:    l.name,
		Message:   fmt.Sprintf(format, args...),
	}

	b, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log marshal failed: %v\n", err)
		return
	}
	fmt.Fprintln(l.out, string(b))
}

// Debug logs a debug message
func (l *JSONLogger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an info message
func (l *JSONLogger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message
func (l *JSONLogger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message
func (l *JSONLogger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}
