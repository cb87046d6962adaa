package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel is a log severity. The values are the slog levels.
type LogLevel slog.Level

const (
	LogLevelDebug = LogLevel(slog.LevelDebug)
	LogLevelInfo  = LogLevel(slog.LevelInfo)
	LogLevelWarn  = LogLevel(slog.LevelWarn)
	LogLevelError = LogLevel(slog.LevelError)
)

func (l LogLevel) String() string {
	return slog.Level(l).String()
}

// ParseLogLevel parses debug, info, warn (or warning) and error, in any
// case. Anything else is info.
func ParseLogLevel(s string) LogLevel {
	var lvl slog.Level
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return LogLevelInfo
	}
	return LogLevel(lvl)
}

func (l LogLevel) slogLevel() slog.Level {
	return slog.Level(l)
}

// Logger provides structured logging for the application.
// Arguments after the message are slog key/value pairs.
type Logger struct {
	level *slog.LevelVar
	log   *slog.Logger
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Nil discards.
	Output io.Writer
	// Session identifies one editor run in the log.
	Session string
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	level := new(slog.LevelVar)
	level.Set(cfg.Level.slogLevel())

	log := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level}))
	if cfg.Session != "" {
		log = log.With("session", cfg.Session)
	}
	return &Logger{level: level, log: log}
}

// NullLogger is a logger that discards all output.
var NullLogger = NewLogger(LoggerConfig{Level: LogLevelError})

// OpenLogFile opens path for appending log lines.
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{level: l.level, log: l.log.With(key, value)}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level. Derived loggers share the level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Set(level.slogLevel())
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l.log.Enabled(context.Background(), level.slogLevel())
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}
