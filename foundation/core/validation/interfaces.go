// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the validator interface, validation results and the
//              standard validation codes shared by all mCW validators.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-26
// Modified: 2026-02-26
//
// Change History:
// - 2026-02-26 v0.1.0: Initial validation interfaces

package validation

import (
	"context"
	"fmt"
)

// Standard validation codes used across all mCW validators
const (
	// CodeRequired marks a missing required value
	CodeRequired = "VALIDATION_REQUIRED"

	// CodeRange marks a numeric value outside its allowed range
	CodeRange = "VALIDATION_RANGE"

	// CodeFormat marks a malformed value
	CodeFormat = "VALIDATION_FORMAT"

	// CodeDuplicate marks a value that must be unique but is not
	CodeDuplicate = "VALIDATION_DUPLICATE"

	// CodeReference marks a dangling reference to an undefined object
	CodeReference = "VALIDATION_REFERENCE"

	// CodeCustom marks failures of rule-specific checks
	CodeCustom = "VALIDATION_CUSTOM"
)

// ValidationError describes one failed validation rule
type ValidationError struct {
	// Code is one of the standard validation codes
	Code string

	// Field names the validated value (clock name, config key, ...)
	Field string

	// Message is the human-readable description
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationResult is the outcome of running one or more validators
type ValidationResult struct {
	// Valid is true when no validator reported an error
	Valid bool

	// Errors lists all failed rules in evaluation order
	Errors []ValidationError
}

// Valid returns a passing validation result
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failing validation result with one error
func Invalid(code, field, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Field: field, Message: message}},
	}
}

// Merge combines this result with another one; the merged result is valid
// only when both are.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	return ValidationResult{
		Valid:  r.Valid && other.Valid,
		Errors: append(append([]ValidationError{}, r.Errors...), other.Errors...),
	}
}

// Validator is implemented by all validation rules
type Validator interface {
	// Validate checks a value and returns the structured result
	Validate(value interface{}) ValidationResult

	// ValidateWithContext checks a value honoring context cancellation
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc adapts a plain function to the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements the Validator interface; the context is
// checked before the function runs.
func (f ValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Invalid(CodeCustom, "", "validation cancelled: "+err.Error())
		}
	}
	return f(value)
}
