// File: token.go
// Title: SDC Tokenizer
// Description: Splits logical commands into word tokens while keeping
//              bracket, brace and quote groups intact.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation

package parser

// tokenize splits one logical command into tokens. A token starting with
// [ or { runs until its depth counter returns to zero and keeps the
// delimiters; a token starting with " runs to the matching unescaped
// quote. Unterminated groups extend to the end of the command instead of
// failing. Anything else is a bare word ending at whitespace or at the
// start of a group.
func tokenize(command string) []string {
	var tokens []string
	i := 0
	for i < len(command) {
		c := command[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '[' || c == '{':
			start := i
			i = scanGroup(command, i)
			tokens = append(tokens, command[start:i])
		case c == '"':
			start := i
			i = scanQuoted(command, i)
			tokens = append(tokens, command[start:i])
		default:
			start := i
			for i < len(command) && !isWordBreak(command[i]) {
				i++
			}
			tokens = append(tokens, command[start:i])
		}
	}
	return tokens
}

// scanGroup returns the index one past the end of the bracket or brace
// group opening at start.
func scanGroup(command string, start int) int {
	var st nestState
	opener := command[start]
	for i := start; i < len(command); i++ {
		st.step(command[i])
		if opener == '[' && st.brackets == 0 {
			return i + 1
		}
		if opener == '{' && st.braces == 0 {
			return i + 1
		}
	}
	return len(command)
}

// scanQuoted returns the index one past the closing quote of the string
// opening at start. An escaped \" stays part of the token.
func scanQuoted(command string, start int) int {
	for i := start + 1; i < len(command); i++ {
		switch command[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(command)
}

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '[', '{', '"':
		return true
	}
	return false
}
