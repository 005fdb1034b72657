// File: preprocess.go
// Title: SDC Preprocessor
// Description: Joins continued lines, strips comments outside groups and
//              assembles logical commands with their source line numbers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation

package parser

import "strings"

// logicalCommand is one comment-free constraint command tagged with the
// physical line it started on. Line numbers are 1-based.
type logicalCommand struct {
	line int
	text string
}

// splitLogicalCommands assembles logical commands from raw constraint
// text. Lines whose last non-whitespace byte is a backslash are joined to
// the following physical line with a single space; comments are stripped
// after joining, so a continued comment swallows its continuation just
// like Tcl does. Blank results are dropped.
func splitLogicalCommands(input string) []logicalCommand {
	var commands []logicalCommand
	var parts []string
	start := 0

	emit := func() {
		if len(parts) == 0 {
			return
		}
		text := strings.TrimSpace(stripComment(strings.Join(parts, " ")))
		parts = parts[:0]
		if text == "" {
			return
		}
		commands = append(commands, logicalCommand{line: start, text: text})
	}

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if len(parts) == 0 {
			start = i + 1
		}
		trimmed := strings.TrimRight(line, " \t")
		if strings.HasSuffix(trimmed, "\\") {
			parts = append(parts, strings.TrimSpace(trimmed[:len(trimmed)-1]))
			continue
		}
		parts = append(parts, strings.TrimSpace(line))
		emit()
	}
	emit()
	return commands
}

// stripComment truncates line at the first # that sits outside every
// bracket, brace and quote group. Escaped hashes survive.
func stripComment(line string) string {
	var st nestState
	for i := 0; i < len(line); i++ {
		if line[i] == '#' && !st.grouped() {
			return line[:i]
		}
		st.step(line[i])
	}
	return line
}
