// File: scan.go
// Title: Nesting Scanner
// Description: Incremental scanner state shared by the preprocessor and
//              the tokenizer so both passes agree on group boundaries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation

package parser

// nestState tracks the three nesting contexts of constraint text: command
// substitution brackets, grouping braces and double quotes. The three
// contexts are counted independently of each other; depth counters never
// drop below zero so a stray closer in a hand-edited file cannot poison
// the rest of the scan.
type nestState struct {
	brackets int
	braces   int
	inQuote  bool
	escaped  bool
}

// step consumes one byte and advances the state. A backslash strips the
// special meaning of exactly one following byte.
func (s *nestState) step(c byte) {
	if s.escaped {
		s.escaped = false
		return
	}
	switch c {
	case '\\':
		s.escaped = true
	case '"':
		s.inQuote = !s.inQuote
	case '[':
		s.brackets++
	case ']':
		if s.brackets > 0 {
			s.brackets--
		}
	case '{':
		s.braces++
	case '}':
		if s.braces > 0 {
			s.braces--
		}
	}
}

// grouped reports whether the scanner currently sits inside any bracket,
// brace or quote context or right behind a backslash. Comment detection
// and word splitting are suspended while grouped.
func (s *nestState) grouped() bool {
	return s.brackets > 0 || s.braces > 0 || s.inQuote || s.escaped
}
