// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels with parsing, display and color helpers
//              for the mCW logging system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-24 v0.1.0: Initial implementation with six levels

package log

import "strings"

// Level represents the severity of a log message
type Level int

const (
	// LevelTrace is for very fine grained diagnostics (token streams, scanner states)
	LevelTrace Level = iota

	// LevelDebug is for development diagnostics (parsed records, dispatch decisions)
	LevelDebug

	// LevelInfo is for regular operational messages
	LevelInfo

	// LevelWarn is for recoverable problems (skipped malformed commands)
	LevelWarn

	// LevelError is for failures of the current operation
	LevelError

	// LevelFatal is for unrecoverable failures; logging at this level exits
	LevelFatal
)

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter tag used in text output
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// Color returns the ANSI color code for console output
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[90m" // bright black
	case LevelDebug:
		return "\033[36m" // cyan
	case LevelInfo:
		return "\033[32m" // green
	case LevelWarn:
		return "\033[33m" // yellow
	case LevelError:
		return "\033[31m" // red
	case LevelFatal:
		return "\033[35m" // magenta
	default:
		return "\033[0m"
	}
}

// ParseLevel parses a level name as used in config files and CLI flags
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{Input: s, Type: "level"}
	}
}
