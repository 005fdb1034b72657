// File: timer.go
// Title: Operation Timer
// Description: Provides timing of operations with automatic duration
//              logging on completion. Used by the CLI to measure parse
//              and analysis runs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-24 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"time"
)

// Timer measures the duration of one operation and logs it on Stop
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// StartTimer starts a timer for the given operation
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion message with the measured duration. Stopping
// twice logs only once.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	t.logger.logDuration(t.level, fmt.Sprintf("%s completed", t.operation), elapsed, []Fields{t.fields})
	return elapsed
}

// StopWithError logs completion with an error at warn level when err is
// non-nil, otherwise behaves like Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}

	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	t.logger.log(LevelWarn, fmt.Sprintf("%s failed", t.operation), err, elapsed, []Fields{t.fields})
	return elapsed
}
