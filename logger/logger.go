package logger

import "io"

// Logger interface defines core logging methods
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Name returns the label the logger was constructed with
	Name() string

	// Configuration
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	SetOutput(w io.Writer)
}

// Config holds the construction options for a logger.
type Config struct {
	// Level is the minimum level token: "debug", "info", "warn" or "error".
	// Empty means "info".
	Level string

	// JSON selects line-delimited JSON records instead of colored console output.
	JSON bool

	// Output is the sink for emitted lines. Nil means os.Stdout.
	Output io.Writer
}

// New creates a named logger from a config. The name and the level token are
// validated here and never again, so emission methods cannot fail.
func New(name string, cfg Config) (Logger, error) {
	if name == "" {
		return nil, &ConfigError{Option: "name", Value: name}
	}

	level := LogLevelInfo
	if cfg.Level != "" {
		var err error
		level, err = ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}

	var l Logger
	if cfg.JSON {
		l = NewJSONLogger(name)
	} else {
		l = NewConsoleLogger(name)
	}
	l.SetLevel(level)
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}
	return l, nil
}
