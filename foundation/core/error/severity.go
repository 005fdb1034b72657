// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization in logs and summaries. Severity is usually
//              derived from the error code rather than set by hand.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that does not affect the overall run
	// Examples: malformed constraint command, unresolved name, bad user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that degrades a result but has workarounds
	// Examples: unreadable report section, config fallback to defaults
	SeverityMedium

	// SeverityHigh indicates a serious error that aborts the current operation
	// Examples: run-history database unavailable, internal invariant violated
	SeverityHigh

	// SeverityCritical indicates data integrity can no longer be trusted
	// Examples: corrupted run-history database
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical integrity errors
	case CodeDataCorruption:
		return SeverityCritical

	// High severity errors
	case CodeDatabaseError, CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeReportFormat, CodeNetlistFormat:
		return SeverityMedium

	// Low severity errors
	case CodeSDCSyntax, CodeSDCValue, CodeSDCSemantic,
		CodeNotFound, CodeInvalidInput,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
