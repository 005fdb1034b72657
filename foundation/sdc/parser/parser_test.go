// File: parser_test.go
// Title: Parser Tests
// Description: End-to-end tests for the dispatch loop covering both
//              reporter modes, raw command capture and JSON round trips.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-04 v0.1.0: Initial tests
// - 2026-03-05 v0.1.0: Sizing command and reuse coverage

package parser

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	mcwlog "github.com/msto63/mCW/foundation/core/log"
)

// sampleConstraints exercises every supported command family plus one
// unknown command that must survive verbatim.
const sampleConstraints = `# Clock definitions
create_clock -period 10 -name clk_main [get_ports clk]
create_clock -period 20 -name clk_slow -waveform {5 15} [get_ports clk_div]

# IO timing
set_input_delay -clock clk_main -max 2.5 [get_ports {data_in[*] valid}]
set_output_delay -clock clk_main 1.8 [get_ports {data_out ready}]

set_false_path -from [get_clocks clk_main] -to [get_clocks clk_slow]
set_multicycle_path 2 -setup \
    -from [get_clocks clk_slow] -to [get_clocks clk_main]
set_max_delay 5.0 -from [get_ports data_in] -to [get_ports data_out]

set_clock_groups -asynchronous -group clk_main -group clk_slow
set_clock_uncertainty -setup 0.3 [get_clocks clk_main]

set_load 0.5 [get_ports data_out]
set_case_analysis 0 [get_ports test_mode]
`

func newTestParser(strict bool) *Parser {
	return New(Options{
		Strict: strict,
		Logger: mcwlog.New().WithOutput(io.Discard),
	})
}

func TestParseCompleteConstraints(t *testing.T) {
	set, err := newTestParser(false).Parse(sampleConstraints)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Clocks) != 2 {
		t.Errorf("clocks = %d, want 2", len(set.Clocks))
	}
	if len(set.IODelays) != 4 {
		t.Errorf("io delays = %d, want 4", len(set.IODelays))
	}
	if len(set.Exceptions) != 3 {
		t.Errorf("exceptions = %d, want 3", len(set.Exceptions))
	}
	if len(set.ClockGroups) != 1 {
		t.Errorf("clock groups = %d, want 1", len(set.ClockGroups))
	}
	if len(set.Uncertainties) != 1 {
		t.Errorf("uncertainties = %d, want 1", len(set.Uncertainties))
	}
	if len(set.Raw) != 1 || !strings.HasPrefix(set.Raw[0], "set_case_analysis") {
		t.Errorf("raw = %v, want the set_case_analysis command", set.Raw)
	}
	if len(set.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none", set.Diagnostics)
	}

	slow, ok := set.Clock("clk_slow")
	if !ok {
		t.Fatal("clk_slow not found")
	}
	if slow.Waveform != [2]float64{5, 15} {
		t.Errorf("clk_slow waveform = %v, want [5 15]", slow.Waveform)
	}

	var multicycle *TimingException
	for i := range set.Exceptions {
		if set.Exceptions[i].ExceptionType == ExceptionMulticycle {
			multicycle = &set.Exceptions[i]
		}
	}
	if multicycle == nil {
		t.Fatal("multicycle exception not found")
	}
	if multicycle.Value == nil || *multicycle.Value != 2 {
		t.Errorf("multicycle value = %v, want 2", multicycle.Value)
	}
	if !reflect.DeepEqual(multicycle.From, []string{"clk_slow"}) {
		t.Errorf("multicycle from = %v, want [clk_slow]", multicycle.From)
	}
}

func TestParseStrictAbortsAtFirstError(t *testing.T) {
	input := `create_clock -period 10 -name clk_a [get_ports a]
create_clock -period bogus -name clk_b [get_ports b]
create_clock -period 5 -name clk_c [get_ports c]
`
	set, err := newTestParser(true).Parse(input)
	if err == nil {
		t.Fatalf("expected error, got %+v", set)
	}
	if set != nil {
		t.Errorf("strict parse returned a partial result: %+v", set)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("error line = %d, want 2", perr.Line)
	}
	if perr.Code != mcwerror.CodeSDCValue {
		t.Errorf("error code = %v, want %v", perr.Code, mcwerror.CodeSDCValue)
	}
	if !strings.Contains(err.Error(), "parse error at line 2") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestParseLenientRecordsDiagnostic(t *testing.T) {
	input := `create_clock -period 10 -name clk_a [get_ports a]
create_clock -period bogus -name clk_b [get_ports b]
create_clock -period 5 -name clk_c [get_ports c]
`
	set, err := newTestParser(false).Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Clocks) != 2 {
		t.Fatalf("clocks = %d, want 2 (malformed one skipped)", len(set.Clocks))
	}
	if set.Clocks[0].Name != "clk_a" || set.Clocks[1].Name != "clk_c" {
		t.Errorf("clock names = %s, %s", set.Clocks[0].Name, set.Clocks[1].Name)
	}
	if len(set.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(set.Diagnostics))
	}
	if set.Diagnostics[0].Line != 2 {
		t.Errorf("diagnostic line = %d, want 2", set.Diagnostics[0].Line)
	}
	if len(set.Raw) != 0 {
		t.Errorf("malformed command leaked into raw: %v", set.Raw)
	}
}

func TestParseErrorLineOfContinuedCommand(t *testing.T) {
	input := `# clocks

create_clock -name clk_x \
    -period notanumber [get_ports x]
`
	_, err := newTestParser(true).Parse(input)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("error line = %d, want 3 (first physical line)", perr.Line)
	}
}

func TestParseUnknownCommandKeptInBothModes(t *testing.T) {
	const command = "set_case_analysis 0 [get_ports test_mode]"
	for _, strict := range []bool{true, false} {
		set, err := newTestParser(strict).Parse(command)
		if err != nil {
			t.Fatalf("strict=%v: unexpected error: %v", strict, err)
		}
		if len(set.Raw) != 1 || set.Raw[0] != command {
			t.Errorf("strict=%v: raw = %v, want [%q]", strict, set.Raw, command)
		}
		if len(set.Diagnostics) != 0 {
			t.Errorf("strict=%v: unknown command produced diagnostics: %v", strict, set.Diagnostics)
		}
	}
}

func TestParseSizingCommandsProduceNothing(t *testing.T) {
	input := `set_load 0.5 [get_ports data_out]
set_driving_cell -lib_cell BUFX2 [get_ports data_in]
`
	set, err := newTestParser(true).Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Raw) != 0 || len(set.Diagnostics) != 0 {
		t.Errorf("sizing commands left traces: raw=%v diagnostics=%v", set.Raw, set.Diagnostics)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"comments only": "# a\n\n# b\n",
		"whitespace":    "   \n\t\n",
	} {
		t.Run(name, func(t *testing.T) {
			set, err := newTestParser(true).Parse(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			total := len(set.Clocks) + len(set.IODelays) + len(set.Exceptions) +
				len(set.ClockGroups) + len(set.Uncertainties) + len(set.Raw) + len(set.Diagnostics)
			if total != 0 {
				t.Errorf("empty input produced records: %+v", set)
			}
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	p := newTestParser(false)
	first, err := p.Parse(sampleConstraints)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := p.Parse(sampleConstraints)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same input differ")
	}
}

func TestConstraintSetJSONRoundTrip(t *testing.T) {
	set, err := newTestParser(false).Parse(sampleConstraints)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back ConstraintSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(set, &back) {
		t.Errorf("round trip changed the set:\n got %+v\nwant %+v", &back, set)
	}
}

func TestParseErrorTruncatesLongText(t *testing.T) {
	longCommand := "create_clock -period bogus [get_ports " + strings.Repeat("x", 100) + "]"
	set, err := newTestParser(false).Parse(longCommand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(set.Diagnostics))
	}
	text := set.Diagnostics[0].Text
	if len(text) != diagnosticTextLimit {
		t.Errorf("diagnostic text length = %d, want %d", len(text), diagnosticTextLimit)
	}
	if !strings.HasSuffix(text, "...") {
		t.Errorf("diagnostic text %q not marked as truncated", text)
	}
}
