package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// ConsoleLogger writes colored, human-readable lines in the form
// [02-01-2006 15:04:05](name)[LEVEL] message
type ConsoleLogger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *log.Logger
	name   string
}

// NewConsoleLogger creates a console logger writing to stdout at info level
func NewConsoleLogger(name string) *ConsoleLogger {
	return &ConsoleLogger{
		level:  LogLevelInfo,
		logger: log.New(os.Stdout, "", 0),
		name:   name,
	}
}

// Name returns the logger name
func (l *ConsoleLogger) Name() string {
	return l.name
}

// SetLevel sets the minimum level
func (l *ConsoleLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum level
func (l *ConsoleLogger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput sets the output writer
func (l *ConsoleLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// log logs a message at the specified level
func (l *ConsoleLogger) log(level LogLevel, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level >= l.level {
		timestamp := time.Now().Format("02-01-2006 15:04:05")
		message := fmt.Sprintf(format, args...)
		colorCode := GetLevelColor(level)

		l.logger.Printf("%s[%s%s%s](%s%s%s)[%s%s%s]%s %s",
			ColorGray, ColorBlue, timestamp, ColorGray,
			ColorMagenta, l.name, ColorGray,
			colorCode, level.String(), ColorGray,
			ColorReset, message)
	}
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an info message
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}
