package logger

import "fmt"

// LogLevel represents logging verbosity
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the display name of the level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ConfigError reports an invalid logger configuration value.
// It is only returned at construction time; emission methods never fail.
type ConfigError struct {
	Option string
	Value  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logger: invalid %s %q", e.Option, e.Value)
}

// ParseLevel parses a level token into a LogLevel.
// Tokens are matched case-sensitively against "debug", "info", "warn"
// and "error"; anything else is a *ConfigError.
func ParseLevel(token string) (LogLevel, error) {
	switch token {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return 0, &ConfigError{Option: "level", Value: token}
	}
}
