// File: stringx.go
// Title: Core String Utilities
// Description: Implements string utility functions shared across the mCW
//              tools, covering blank detection, truncation for diagnostics
//              and display, and defaulting helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-03-09
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation with core string helpers
// - 2026-03-09 v0.1.0: Added Truncate ellipsis handling for short limits

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty checks if a string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// DefaultIfBlank returns the fallback value when s is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens a string to at most max runes, appending "..." when
// content was cut off. For max < 4 the raw prefix is returned because the
// ellipsis would not fit.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// FirstNonBlank returns the first argument that is not blank, or the empty
// string when all are blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
