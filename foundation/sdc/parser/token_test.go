// File: token_test.go
// Title: Tokenizer Tests
// Description: Unit tests for word splitting with intact group tokens.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial tests

package parser

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{
			name:    "bare words",
			command: "create_clock -period 10 -name clk",
			want:    []string{"create_clock", "-period", "10", "-name", "clk"},
		},
		{
			name:    "bracket group stays one token",
			command: "create_clock -period 10 [get_ports clk]",
			want:    []string{"create_clock", "-period", "10", "[get_ports clk]"},
		},
		{
			name:    "nested braces inside brackets",
			command: "-from [get_clocks {clk_a clk_b}] -to [get_clocks clk_c]",
			want:    []string{"-from", "[get_clocks {clk_a clk_b}]", "-to", "[get_clocks clk_c]"},
		},
		{
			name:    "brace group with wildcards",
			command: "set_input_delay 2.5 [get_ports {data_in[*] valid}]",
			want:    []string{"set_input_delay", "2.5", "[get_ports {data_in[*] valid}]"},
		},
		{
			name:    "quoted token",
			command: "foo \"a b c\" bar",
			want:    []string{"foo", "\"a b c\"", "bar"},
		},
		{
			name:    "escaped quote stays inside token",
			command: "foo \"say \\\"hi\\\"\"",
			want:    []string{"foo", "\"say \\\"hi\\\"\""},
		},
		{
			name:    "escaped brace stays inside group",
			command: "foo {a \\} b}",
			want:    []string{"foo", "{a \\} b}"},
		},
		{
			name:    "unterminated bracket group runs to end",
			command: "create_clock [get_ports clk",
			want:    []string{"create_clock", "[get_ports clk"},
		},
		{
			name:    "unterminated quote runs to end",
			command: "foo \"unclosed",
			want:    []string{"foo", "\"unclosed"},
		},
		{
			name:    "group opener breaks a bare word",
			command: "-waveform{0 5}",
			want:    []string{"-waveform", "{0 5}"},
		},
		{
			name:    "tabs as separators",
			command: "a\tb\t c",
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "empty command",
			command: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.command)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %#v, want %#v", tt.command, got, tt.want)
			}
		})
	}
}

func TestScanGroupKeepsDelimiters(t *testing.T) {
	command := "[get_clocks {a b}] tail"
	end := scanGroup(command, 0)
	if got := command[:end]; got != "[get_clocks {a b}]" {
		t.Errorf("scanGroup token = %q, want %q", got, "[get_clocks {a b}]")
	}
}
