// File: report.go
// Title: Parse Error Reporting
// Description: ParseError and the strict/lenient reporter strategies that
//              decide whether a malformed command aborts the parse.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	mcwlog "github.com/msto63/mCW/foundation/core/log"
	"github.com/msto63/mCW/foundation/utils/stringx"
)

// diagnosticTextLimit bounds the command text carried by diagnostics and
// error messages.
const diagnosticTextLimit = 60

// ParseError describes one malformed constraint command. Line is the
// first physical line of the command, Text its comment-free form and Code
// the error code the facade attaches when the error escapes in strict
// mode.
type ParseError struct {
	Line    int
	Text    string
	Message string
	Code    mcwerror.Code
}

func newParseError(code mcwerror.Code, format string, args ...interface{}) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s (near '%s')",
		e.Line, e.Message, stringx.Truncate(e.Text, diagnosticTextLimit))
}

// reporter decides whether a malformed command aborts the parse or is
// recorded on the result and skipped.
type reporter interface {
	report(perr *ParseError, result *ConstraintSet) error
}

// strictReporter aborts at the first malformed command.
type strictReporter struct{}

func (strictReporter) report(perr *ParseError, _ *ConstraintSet) error {
	return perr
}

// lenientReporter logs a warning, records a diagnostic and keeps going.
// The skipped command produces no record and is not added to Raw.
type lenientReporter struct {
	logger *mcwlog.Logger
}

func (r lenientReporter) report(perr *ParseError, result *ConstraintSet) error {
	r.logger.Warn("skipping malformed constraint", mcwlog.Fields{
		"line":   perr.Line,
		"reason": perr.Message,
	})
	result.Diagnostics = append(result.Diagnostics, Diagnostic{
		Line:    perr.Line,
		Message: perr.Message,
		Text:    stringx.Truncate(perr.Text, diagnosticTextLimit),
	})
	return nil
}
