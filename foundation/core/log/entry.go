// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the log entry passed to formatters and the Fields
//              map carrying structured key/value data.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-24 v0.1.0: Initial implementation

package log

import "time"

// Fields carries structured key/value data attached to a log message
type Fields map[string]interface{}

// Merge returns a new Fields map containing the receiver's entries
// overlaid with the given ones. Neither input is modified.
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// With returns a copy of the Fields map with one additional entry
func (f Fields) With(key string, value interface{}) Fields {
	return f.Merge(Fields{key: value})
}

// Entry is one log record handed to a Formatter
type Entry struct {
	// Timestamp when the entry was created
	Timestamp time.Time

	// Level of the message
	Level Level

	// Message is the human-readable log text
	Message string

	// Logger is the name of the emitting logger, may be empty
	Logger string

	// RequestID correlates all messages of one CLI invocation
	RequestID string

	// Fields holds structured key/value data
	Fields Fields

	// Error is an optional error attached to the entry
	Error error

	// Duration is an optional operation duration (from timers)
	Duration time.Duration
}
