// File: logger.go
// Title: Structured Logger
// Description: Implements the structured, leveled logger of the mCW tools.
//              Loggers are immutable; the With* methods return configured
//              clones so derived loggers never affect their parent.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-24 v0.1.0: Initial implementation with clone-based configuration
// - 2026-03-02 v0.1.0: Added LogError severity mapping

package log

import (
	"io"
	"os"
	"sync"
	"time"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

// Logger is a leveled, structured logger. Use New to create one and the
// With* methods to derive configured copies.
type Logger struct {
	mu        sync.Mutex
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields
	requestID string
}

// New creates a logger with default settings: Info level, text format,
// output to stderr.
func New() *Logger {
	return &Logger{
		level:     LevelInfo,
		formatter: NewTextFormatter(),
		output:    os.Stderr,
		fields:    make(Fields),
	}
}

// clone returns a copy of the logger with its own fields map
func (l *Logger) clone() *Logger {
	copied := &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    make(Fields, len(l.fields)),
		requestID: l.requestID,
	}
	for k, v := range l.fields {
		copied.fields[k] = v
	}
	return copied
}

// WithLevel returns a logger that drops messages below the given level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a logger using the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = formatterFor(format)
	return c
}

// WithFormatter returns a logger using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a logger writing to the given writer
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	return c
}

// WithName returns a logger tagged with a component name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a logger that attaches the field to every message
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a logger that attaches all fields to every message
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// WithRequestID returns a logger that stamps every message with the id of
// the current invocation
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() Level {
	return l.level
}

// IsLevelEnabled reports whether messages at the given level are emitted
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, 0, fields)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, 0, fields)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, 0, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, 0, fields)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, 0, fields)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, 0, fields)
	os.Exit(1)
}

// WarnWithErr logs a warning with an attached error
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, 0, fields)
}

// ErrorWithErr logs an error message with an attached error
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, 0, fields)
}

// LogError logs a classified error at the level matching its severity:
// low and medium severities warn, high and critical log as errors.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	level := LevelError
	switch mcwerror.GetSeverity(err) {
	case mcwerror.SeverityLow, mcwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, 0, fields)
}

// logDuration is used by timers to emit completion messages
func (l *Logger) logDuration(level Level, message string, duration time.Duration, fields []Fields) {
	l.log(level, message, nil, duration, fields)
}

// log builds the entry and hands it to the formatter
func (l *Logger) log(level Level, message string, err error, duration time.Duration, fields []Fields) {
	if level < l.level {
		return
	}

	merged := l.fields
	for _, f := range fields {
		merged = merged.Merge(f)
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		RequestID: l.requestID,
		Fields:    merged,
		Error:     err,
		Duration:  duration,
	}

	out, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(out)
}

// Default logger management

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// Default returns the package-level default logger
func Default() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// Trace logs at trace level via the default logger
func Trace(message string, fields ...Fields) { Default().Trace(message, fields...) }

// Debug logs at debug level via the default logger
func Debug(message string, fields ...Fields) { Default().Debug(message, fields...) }

// Info logs at info level via the default logger
func Info(message string, fields ...Fields) { Default().Info(message, fields...) }

// Warn logs at warn level via the default logger
func Warn(message string, fields ...Fields) { Default().Warn(message, fields...) }

// Error logs at error level via the default logger
func Error(message string, fields ...Fields) { Default().Error(message, fields...) }
