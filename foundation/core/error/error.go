// File: error.go
// Title: Structured Error Type
// Description: Implements the structured error type used across the mCW
//              tools. Errors carry a code, a derived severity, an optional
//              cause chain, free-form details and the failing operation,
//              so the CLI can map them to exit codes and log output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation with builder methods
// - 2026-03-02 v0.1.0: Added GetCode/HasCode helpers for exit-code mapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Error is the structured error type of the mCW tools. The zero value is
// not usable; construct instances via New or Wrap.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   []string
	context   map[string]interface{}
	operation string
}

// New creates a new error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  GetSeverityFromCode(CodeUnknown),
		timestamp: time.Now(),
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap creates a new error that wraps an existing error as its cause.
// Wrapping nil returns nil so call sites can wrap unconditionally.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	// Inherit code and severity from an already classified cause.
	var mcwErr *Error
	if errors.As(err, &mcwErr) {
		wrapped.code = mcwErr.code
		wrapped.severity = mcwErr.severity
	}
	return wrapped
}

// Wrapf creates a wrapping error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode sets the error code and derives the matching severity
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity derived from the code
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail appends one detail line to the error
func (e *Error) WithDetail(detail string) *Error {
	e.details = append(e.details, detail)
	return e
}

// WithDetails appends multiple detail lines to the error
func (e *Error) WithDetails(details ...string) *Error {
	e.details = append(e.details, details...)
	return e
}

// WithContext attaches a key/value pair for structured logging
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.context == nil {
		e.context = make(map[string]interface{})
	}
	e.context[key] = value
	return e
}

// WithOperation records the operation that failed (e.g. "sdc.parse")
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded failing operation, may be empty
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the detail lines attached to the error
func (e *Error) Details() []string {
	return e.details
}

// Context returns the structured context attached to the error
func (e *Error) Context() map[string]interface{} {
	return e.context
}

// RootCause walks the cause chain and returns the innermost error
func (e *Error) RootCause() error {
	var current error = e
	for {
		unwrapped := errors.Unwrap(current)
		if unwrapped == nil {
			return current
		}
		current = unwrapped
	}
}

// String returns a verbose single-line representation for logs
func (e *Error) String() string {
	s := fmt.Sprintf("[%s/%s] %s", e.code, e.severity, e.message)
	if e.operation != "" {
		s += fmt.Sprintf(" (operation: %s)", e.operation)
	}
	if e.cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.cause)
	}
	return s
}

// MarshalJSON serializes the error for structured log output
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if len(e.context) > 0 {
		data["context"] = e.context
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// GetCode extracts the error code from any error. Unclassified errors
// report CodeUnknown.
func GetCode(err error) Code {
	var mcwErr *Error
	if errors.As(err, &mcwErr) {
		return mcwErr.code
	}
	return CodeUnknown
}

// HasCode checks whether the error carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetSeverity extracts the severity from any error. Unclassified errors
// report the severity of CodeUnknown.
func GetSeverity(err error) Severity {
	var mcwErr *Error
	if errors.As(err, &mcwErr) {
		return mcwErr.severity
	}
	return GetSeverityFromCode(CodeUnknown)
}
