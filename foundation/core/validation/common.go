// File: common.go
// Title: Common Validators
// Description: Stock validation rules shared by the mCW tools: required
//              values, numeric ranges and membership checks.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-26
// Modified: 2026-02-26
//
// Change History:
// - 2026-02-26 v0.1.0: Initial common validators

package validation

import (
	"fmt"
	"strings"
)

// Required fails when a string value is empty or whitespace-only
func Required(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok {
			if value == nil {
				return Invalid(CodeRequired, field, "value is required")
			}
			return Valid()
		}
		if strings.TrimSpace(s) == "" {
			return Invalid(CodeRequired, field, "value must not be blank")
		}
		return Valid()
	}
}

// Positive fails when a numeric value is zero or negative
func Positive(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		v, err := toFloat64(value)
		if err != nil {
			return Invalid(CodeFormat, field, err.Error())
		}
		if v <= 0 {
			return Invalid(CodeRange, field, fmt.Sprintf("value must be positive, got %g", v))
		}
		return Valid()
	}
}

// InRange fails when a numeric value lies outside [min, max]
func InRange(field string, min, max float64) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		v, err := toFloat64(value)
		if err != nil {
			return Invalid(CodeFormat, field, err.Error())
		}
		if v < min || v > max {
			return Invalid(CodeRange, field,
				fmt.Sprintf("value %g outside allowed range [%g, %g]", v, min, max))
		}
		return Valid()
	}
}

// OneOf fails when a string value is not among the allowed set
func OneOf(field string, allowed ...string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok {
			return Invalid(CodeFormat, field, "value must be a string")
		}
		for _, a := range allowed {
			if s == a {
				return Valid()
			}
		}
		return Invalid(CodeFormat, field,
			fmt.Sprintf("value %q not one of %s", s, strings.Join(allowed, ", ")))
	}
}

// toFloat64 widens the numeric types validators encounter in practice
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", value)
	}
}
