// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the mCW tools. These codes drive
//              severity derivation, log output and CLI exit codes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation with core error codes
// - 2026-03-02 v0.1.0: Added ExitCode mapping for the CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mCW tools
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// SDC constraint parsing
	CodeSDCSyntax   Code = "SDC_SYNTAX"
	CodeSDCValue    Code = "SDC_VALUE"
	CodeSDCSemantic Code = "SDC_SEMANTIC"

	// Report and netlist analysis
	CodeReportFormat  Code = "REPORT_FORMAT"
	CodeNetlistFormat Code = "NETLIST_FORMAT"

	// Storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDataCorruption Code = "DATA_CORRUPTION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSDCSyntax, CodeSDCValue, CodeSDCSemantic,
		CodeReportFormat, CodeNetlistFormat,
		CodeDatabaseError, CodeDataCorruption,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSDCSyntax, CodeSDCValue, CodeSDCSemantic:
		return "sdc"
	case CodeReportFormat, CodeNetlistFormat:
		return "analysis"
	case CodeDatabaseError, CodeDataCorruption:
		return "storage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code the CLI uses for this error code.
// 0 is reserved for success, 1 is the generic failure code.
func (c Code) ExitCode() int {
	switch c {
	case CodeNotFound:
		return 2
	case CodeSDCSyntax, CodeSDCValue, CodeSDCSemantic:
		return 3
	default:
		return 1
	}
}
