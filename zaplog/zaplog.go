// Package zaplog implements the logger.Logger interface on top of
// go.uber.org/zap, for hosts that already run a zap pipeline.
package zaplog

import (
	"io"
	"os"
	"sync"

	"github.com/rediwo/redi-log/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a zap-backed logger. Level changes go through zap's atomic
// level; changing the sink rebuilds the core.
type Logger struct {
	mu    sync.RWMutex
	name  string
	json  bool
	level zap.AtomicLevel
	sink  zapcore.WriteSyncer
	sugar *zap.SugaredLogger
}

// New creates a zap-backed logger from the same config the core loggers use.
func New(name string, cfg logger.Config) (*Logger, error) {
	if name == "" {
		return nil, &logger.ConfigError{Option: "name", Value: name}
	}

	level := logger.LogLevelInfo
	if cfg.Level != "" {
		var err error
		level, err = logger.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}

	var w io.Writer = os.Stdout
	if cfg.Output != nil {
		w = cfg.Output
	}

	l := &Logger{
		name:  name,
		json:  cfg.JSON,
		level: zap.NewAtomicLevelAt(toZapLevel(level)),
		sink:  zapcore.AddSync(w),
	}
	l.rebuild()
	return l, nil
}

// rebuild recreates the zap core; callers must hold the write lock or be
// the constructor.
func (l *Logger) rebuild() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.LevelKey = "level"
	encoderConfig.NameKey = "logger"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder

	var encoder zapcore.Encoder
	if l.json {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, l.sink, l.level)
	l.sugar = zap.New(core).Named(l.name).Sugar()
}

func (l *Logger) logger() *zap.SugaredLogger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sugar
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// SetLevel sets the minimum level
func (l *Logger) SetLevel(level logger.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() logger.LogLevel {
	return fromZapLevel(l.level.Level())
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = zapcore.AddSync(w)
	l.rebuild()
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.logger().Sync()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.logger().Debugf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.logger().Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.logger().Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.logger().Errorf(format, args...)
}

func toZapLevel(level logger.LogLevel) zapcore.Level {
	switch level {
	case logger.LogLevelDebug:
		return zapcore.DebugLevel
	case logger.LogLevelInfo:
		return zapcore.InfoLevel
	case logger.LogLevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func fromZapLevel(level zapcore.Level) logger.LogLevel {
	switch level {
	case zapcore.DebugLevel:
		return logger.LogLevelDebug
	case zapcore.InfoLevel:
		return logger.LogLevelInfo
	case zapcore.WarnLevel:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelError
	}
}
