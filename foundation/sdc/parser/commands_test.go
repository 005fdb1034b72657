// File: commands_test.go
// Title: Command Parser Tests
// Description: Unit tests for the per-command parse routines.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-04 v0.1.0: Initial tests
// - 2026-03-05 v0.1.0: Clock group and uncertainty coverage

package parser

import (
	"reflect"
	"testing"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

// args tokenizes a full command line and drops the command word, matching
// what dispatch hands to the per-command parsers.
func args(t *testing.T, command string) []string {
	t.Helper()
	tokens := tokenize(command)
	if len(tokens) == 0 {
		t.Fatalf("no tokens in %q", command)
	}
	return tokens[1:]
}

func TestParseCreateClock(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		want     *ClockConstraint
		wantCode mcwerror.Code
	}{
		{
			name:    "full form",
			command: "create_clock -period 10 -name clk_main -waveform {0 5} [get_ports clk]",
			want:    &ClockConstraint{Name: "clk_main", Period: 10, Waveform: [2]float64{0, 5}, Source: "clk"},
		},
		{
			name:    "waveform defaults to half period",
			command: "create_clock -period 8 [get_ports clk]",
			want:    &ClockConstraint{Name: "clk", Period: 8, Waveform: [2]float64{0, 4}, Source: "clk"},
		},
		{
			name:    "name falls back to source",
			command: "create_clock -period 10 [get_ports sys_clk]",
			want:    &ClockConstraint{Name: "sys_clk", Period: 10, Waveform: [2]float64{0, 5}, Source: "sys_clk"},
		},
		{
			name:    "virtual clock without source",
			command: "create_clock -period 10 -name virt_clk",
			want:    &ClockConstraint{Name: "virt_clk", Period: 10, Waveform: [2]float64{0, 5}},
		},
		{
			name:    "nameless virtual clock",
			command: "create_clock -period 10",
			want:    &ClockConstraint{Name: "unnamed", Period: 10, Waveform: [2]float64{0, 5}},
		},
		{
			name:    "add switch tolerated",
			command: "create_clock -period 4 -name clk_fast -add [get_ports clk]",
			want:    &ClockConstraint{Name: "clk_fast", Period: 4, Waveform: [2]float64{0, 2}, Source: "clk"},
		},
		{
			name:     "missing period",
			command:  "create_clock -name clk [get_ports clk]",
			wantCode: mcwerror.CodeSDCSyntax,
		},
		{
			name:     "unparseable period",
			command:  "create_clock -period fast [get_ports clk]",
			wantCode: mcwerror.CodeSDCValue,
		},
		{
			name:     "zero period",
			command:  "create_clock -period 0 [get_ports clk]",
			wantCode: mcwerror.CodeSDCValue,
		},
		{
			name:     "negative period",
			command:  "create_clock -period -10 -name clk",
			wantCode: mcwerror.CodeSDCValue,
		},
		{
			name:     "waveform edge not numeric",
			command:  "create_clock -period 10 -waveform {0 x} [get_ports clk]",
			wantCode: mcwerror.CodeSDCValue,
		},
		{
			name:     "waveform with three edges",
			command:  "create_clock -period 10 -waveform {0 2 5} [get_ports clk]",
			wantCode: mcwerror.CodeSDCValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, perr := parseCreateClock(args(t, tt.command))
			if tt.wantCode != "" {
				if perr == nil {
					t.Fatalf("expected parse error, got %+v", got)
				}
				if perr.Code != tt.wantCode {
					t.Errorf("error code = %v, want %v", perr.Code, tt.wantCode)
				}
				return
			}
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr.Message)
			}
			if *got != *tt.want {
				t.Errorf("clock = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseIODelay(t *testing.T) {
	t.Run("multi pin expansion", func(t *testing.T) {
		got, perr := parseIODelay("set_input_delay",
			args(t, "set_input_delay -clock clk_sys -max 2.5 [get_ports {a b c}]"), DelayInput)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if len(got) != 3 {
			t.Fatalf("got %d records, want 3", len(got))
		}
		for i, pin := range []string{"a", "b", "c"} {
			want := IODelay{Pin: pin, Clock: "clk_sys", DelayValue: 2.5, DelayType: DelayInput, MaxDelay: true}
			if got[i] != want {
				t.Errorf("record %d = %+v, want %+v", i, got[i], want)
			}
		}
	})

	t.Run("output direction with clock query", func(t *testing.T) {
		got, perr := parseIODelay("set_output_delay",
			args(t, "set_output_delay -clock [get_clocks clk_sys] -min 1.2 [get_ports out]"), DelayOutput)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		want := IODelay{Pin: "out", Clock: "clk_sys", DelayValue: 1.2, DelayType: DelayOutput, MinDelay: true}
		if len(got) != 1 || got[0] != want {
			t.Errorf("records = %+v, want [%+v]", got, want)
		}
	})

	t.Run("negative delay value", func(t *testing.T) {
		got, perr := parseIODelay("set_input_delay",
			args(t, "set_input_delay -clock clk -0.5 [get_ports a]"), DelayInput)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if len(got) != 1 || got[0].DelayValue != -0.5 {
			t.Errorf("records = %+v, want one record with value -0.5", got)
		}
	})

	t.Run("zero pins is not an error", func(t *testing.T) {
		got, perr := parseIODelay("set_input_delay",
			args(t, "set_input_delay -clock clk 2.0"), DelayInput)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if len(got) != 0 {
			t.Errorf("got %d records, want 0", len(got))
		}
	})

	t.Run("missing delay value", func(t *testing.T) {
		_, perr := parseIODelay("set_input_delay",
			args(t, "set_input_delay -clock clk [get_ports a]"), DelayInput)
		if perr == nil {
			t.Fatal("expected parse error")
		}
		if perr.Code != mcwerror.CodeSDCSyntax {
			t.Errorf("error code = %v, want %v", perr.Code, mcwerror.CodeSDCSyntax)
		}
	})
}

func TestParseFalsePath(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantFrom []string
		wantTo   []string
	}{
		{
			name:     "clock to clock",
			command:  "set_false_path -from [get_clocks {clk_a clk_b}] -to [get_clocks clk_c]",
			wantFrom: []string{"clk_a", "clk_b"},
			wantTo:   []string{"clk_c"},
		},
		{
			name:     "repeated from merges",
			command:  "set_false_path -from [get_clocks a] -from [get_clocks b] -to c",
			wantFrom: []string{"a", "b"},
			wantTo:   []string{"c"},
		},
		{
			name:     "through consumed but not recorded",
			command:  "set_false_path -through [get_pins u1/x] -from [get_ports rst_n]",
			wantFrom: []string{"rst_n"},
			wantTo:   []string{},
		},
		{
			name:     "no endpoints",
			command:  "set_false_path",
			wantFrom: []string{},
			wantTo:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, perr := parseFalsePath(args(t, tt.command))
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr.Message)
			}
			if got.ExceptionType != ExceptionFalsePath {
				t.Errorf("exception type = %v, want false_path", got.ExceptionType)
			}
			if got.Value != nil {
				t.Errorf("false path carries value %g, want nil", *got.Value)
			}
			if !reflect.DeepEqual(got.From, tt.wantFrom) {
				t.Errorf("from = %#v, want %#v", got.From, tt.wantFrom)
			}
			if !reflect.DeepEqual(got.To, tt.wantTo) {
				t.Errorf("to = %#v, want %#v", got.To, tt.wantTo)
			}
		})
	}
}

func TestParseMulticyclePath(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		wantValue *float64
	}{
		{
			name:      "positional multiplier",
			command:   "set_multicycle_path 2 -setup -from [get_clocks a] -to [get_clocks b]",
			wantValue: floatPtr(2),
		},
		{
			name:      "explicit setup magnitude",
			command:   "set_multicycle_path -setup 3 -from [get_clocks a]",
			wantValue: floatPtr(3),
		},
		{
			name:      "explicit magnitude beats positional",
			command:   "set_multicycle_path 2 -setup 4 -from [get_clocks a]",
			wantValue: floatPtr(4),
		},
		{
			name:      "hold magnitude",
			command:   "set_multicycle_path -hold 1 -from [get_clocks a]",
			wantValue: floatPtr(1),
		},
		{
			name:      "path multiplier option",
			command:   "set_multicycle_path -path_multiplier 3 -from [get_clocks a]",
			wantValue: floatPtr(3),
		},
		{
			name:      "no multiplier keeps nil",
			command:   "set_multicycle_path -end -from [get_clocks a]",
			wantValue: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, perr := parseMulticyclePath(args(t, tt.command))
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr.Message)
			}
			if got.ExceptionType != ExceptionMulticycle {
				t.Errorf("exception type = %v, want multicycle_path", got.ExceptionType)
			}
			switch {
			case tt.wantValue == nil && got.Value != nil:
				t.Errorf("value = %g, want nil", *got.Value)
			case tt.wantValue != nil && got.Value == nil:
				t.Errorf("value = nil, want %g", *tt.wantValue)
			case tt.wantValue != nil && *got.Value != *tt.wantValue:
				t.Errorf("value = %g, want %g", *got.Value, *tt.wantValue)
			}
		})
	}
}

func TestParseDelayException(t *testing.T) {
	t.Run("max delay", func(t *testing.T) {
		got, perr := parseDelayException("set_max_delay",
			args(t, "set_max_delay 5.0 -from [get_ports data_in] -to [get_ports data_out]"), ExceptionMaxDelay)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if got.ExceptionType != ExceptionMaxDelay || got.Value == nil || *got.Value != 5.0 {
			t.Errorf("exception = %+v, want max_delay with value 5", got)
		}
		if !reflect.DeepEqual(got.From, []string{"data_in"}) || !reflect.DeepEqual(got.To, []string{"data_out"}) {
			t.Errorf("endpoints = %v -> %v", got.From, got.To)
		}
	})

	t.Run("min delay", func(t *testing.T) {
		got, perr := parseDelayException("set_min_delay",
			args(t, "set_min_delay 0.2 -from [get_clocks clk]"), ExceptionMinDelay)
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if got.ExceptionType != ExceptionMinDelay || got.Value == nil || *got.Value != 0.2 {
			t.Errorf("exception = %+v, want min_delay with value 0.2", got)
		}
	})

	t.Run("missing bound", func(t *testing.T) {
		_, perr := parseDelayException("set_max_delay",
			args(t, "set_max_delay -from [get_ports a]"), ExceptionMaxDelay)
		if perr == nil {
			t.Fatal("expected parse error")
		}
		if perr.Code != mcwerror.CodeSDCSyntax {
			t.Errorf("error code = %v, want %v", perr.Code, mcwerror.CodeSDCSyntax)
		}
	})
}

func TestParseClockGroups(t *testing.T) {
	t.Run("asynchronous groups", func(t *testing.T) {
		got, perr := parseClockGroups(args(t,
			"set_clock_groups -asynchronous -group {clk_a clk_b} -group clk_c"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		want := [][]string{{"clk_a", "clk_b"}, {"clk_c"}}
		if !reflect.DeepEqual(got.Groups, want) {
			t.Errorf("groups = %#v, want %#v", got.Groups, want)
		}
		if !got.Exclusive {
			t.Error("asynchronous groups not marked exclusive")
		}
	})

	t.Run("named exclusive groups via query", func(t *testing.T) {
		got, perr := parseClockGroups(args(t,
			"set_clock_groups -name grp1 -logically_exclusive -group [get_clocks {a b}] -group [get_clocks c]"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if got.Name != "grp1" {
			t.Errorf("name = %q, want grp1", got.Name)
		}
		want := [][]string{{"a", "b"}, {"c"}}
		if !reflect.DeepEqual(got.Groups, want) {
			t.Errorf("groups = %#v, want %#v", got.Groups, want)
		}
		if !got.Exclusive {
			t.Error("logically exclusive groups not marked exclusive")
		}
	})

	t.Run("plain groups are not exclusive", func(t *testing.T) {
		got, perr := parseClockGroups(args(t, "set_clock_groups -group a -group b"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if got.Exclusive {
			t.Error("plain groups marked exclusive")
		}
	})

	t.Run("missing groups", func(t *testing.T) {
		_, perr := parseClockGroups(args(t, "set_clock_groups -asynchronous"))
		if perr == nil {
			t.Fatal("expected parse error")
		}
		if perr.Code != mcwerror.CodeSDCSyntax {
			t.Errorf("error code = %v, want %v", perr.Code, mcwerror.CodeSDCSyntax)
		}
	})
}

func TestParseClockUncertainty(t *testing.T) {
	t.Run("setup uncertainty on clock", func(t *testing.T) {
		got, perr := parseClockUncertainty(args(t,
			"set_clock_uncertainty -setup 0.25 [get_clocks clk_main]"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		want := &ClockUncertainty{Value: 0.25, Objects: []string{"clk_main"}, Setup: true}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("uncertainty = %+v, want %+v", got, want)
		}
	})

	t.Run("from to targets are not modeled", func(t *testing.T) {
		got, perr := parseClockUncertainty(args(t,
			"set_clock_uncertainty -from [get_clocks a] -to [get_clocks b] 0.5"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if got.Value != 0.5 {
			t.Errorf("value = %g, want 0.5", got.Value)
		}
		if len(got.Objects) != 0 {
			t.Errorf("objects = %v, want none", got.Objects)
		}
	})

	t.Run("hold without objects", func(t *testing.T) {
		got, perr := parseClockUncertainty(args(t, "set_clock_uncertainty -hold 0.1"))
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr.Message)
		}
		if !got.Hold || got.Setup {
			t.Errorf("flags = setup:%v hold:%v, want hold only", got.Setup, got.Hold)
		}
	})

	t.Run("missing value", func(t *testing.T) {
		_, perr := parseClockUncertainty(args(t, "set_clock_uncertainty [get_clocks clk]"))
		if perr == nil {
			t.Fatal("expected parse error")
		}
	})
}

func floatPtr(v float64) *float64 { return &v }
