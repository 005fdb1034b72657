// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats and formatters for log messages.
//              JSON for machine consumption, text for plain terminals and
//              a colored console format for development.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-24 v0.1.0: Initial implementation with JSON and text formats
// - 2026-03-02 v0.1.0: Added console format with level colors

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs (default)
	FormatText Format = iota

	// FormatJSON outputs structured JSON logs
	FormatJSON

	// FormatConsole outputs colored text logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as used in config files
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, &ParseError{Input: s, Type: "format"}
	}
}

// ParseError reports an unparseable level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown log %s: %q", e.Type, e.Input)
}

// Formatter renders one entry into bytes including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as single-line JSON objects
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format (default RFC3339)
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with default settings
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	for k, v := range entry.Fields {
		data[k] = v
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// Classified errors serialize their code and severity as well.
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := marshaler.MarshalJSON(); err == nil {
				var details map[string]interface{}
				if json.Unmarshal(raw, &details) == nil {
					data["error_details"] = details
				}
			}
		}
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable lines
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format (default wall clock time)
	TimestampFormat string

	// DisableTimestamp drops the timestamp, useful in tests
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as one text line
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString("[" + entry.Level.ShortString() + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	appendFieldText(&b, entry)

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter formats log entries like TextFormatter but with a
// colored level tag
type ConsoleFormatter struct {
	// TimestampFormat specifies the timestamp format (default wall clock time)
	TimestampFormat string
}

// NewConsoleFormatter creates a console formatter with default settings
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry with ANSI colors
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(entry.Level.Color())
	b.WriteString("[" + entry.Level.ShortString() + "]")
	b.WriteString("\033[0m")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	appendFieldText(&b, entry)

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// appendFieldText renders fields, request id, error and duration in a
// stable key order shared by the text and console formatters.
func appendFieldText(b *strings.Builder, entry *Entry) {
	if entry.RequestID != "" {
		fmt.Fprintf(b, " request_id=%s", entry.RequestID)
	}

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%v", k, entry.Fields[k])
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(b, " duration=%s", entry.Duration)
	}
}

// formatterFor returns the formatter instance for a format selector
func formatterFor(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewTextFormatter()
	}
}
