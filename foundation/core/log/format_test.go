// File: format_test.go
// Title: Log Format Tests
// Description: Unit tests for format parsing and the three formatters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-24 v0.1.0: Initial tests
// - 2026-03-02 v0.1.0: Added console formatter coverage

package log

import (
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	return &Entry{
		Timestamp: time.Date(2026, 3, 2, 14, 30, 5, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "skipping malformed command",
		Logger:    "sdc",
		Fields:    Fields{"line": 12},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" console ", FormatConsole, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if !strings.HasPrefix(line, "14:30:05 [WRN] {sdc} skipping malformed command") {
		t.Errorf("unexpected prefix: %q", line)
	}
	if !strings.Contains(line, "line=12") {
		t.Errorf("field missing: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line must end with newline")
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := testEntry()
	entry.Fields = Fields{"z_last": 1, "a_first": 2, "m_mid": 3}

	f := &TextFormatter{DisableTimestamp: true}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	aPos := strings.Index(line, "a_first")
	mPos := strings.Index(line, "m_mid")
	zPos := strings.Index(line, "z_last")
	if aPos < 0 || mPos < 0 || zPos < 0 {
		t.Fatalf("fields missing: %q", line)
	}
	if !(aPos < mPos && mPos < zPos) {
		t.Errorf("fields not sorted: %q", line)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if !strings.Contains(line, LevelWarn.Color()) {
		t.Errorf("color code missing: %q", line)
	}
	if !strings.Contains(line, "\033[0m") {
		t.Errorf("color reset missing: %q", line)
	}
}

func TestJSONFormatterDuration(t *testing.T) {
	entry := testEntry()
	entry.Duration = 1500 * time.Microsecond

	f := NewJSONFormatter()
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(string(out), "\"duration_ms\":1.5") {
		t.Errorf("duration_ms missing or wrong: %q", out)
	}
}
