// File: preprocess_test.go
// Title: Preprocessor Tests
// Description: Unit tests for continuation joining, comment stripping and
//              logical command assembly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial tests

package parser

import "testing"

func TestSplitLogicalCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []logicalCommand
	}{
		{
			name:  "one command per line",
			input: "create_clock -period 10 [get_ports clk]\nset_false_path -from a -to b",
			want: []logicalCommand{
				{1, "create_clock -period 10 [get_ports clk]"},
				{2, "set_false_path -from a -to b"},
			},
		},
		{
			name:  "blank lines dropped",
			input: "\n\ncreate_clock -period 10\n\n",
			want:  []logicalCommand{{3, "create_clock -period 10"}},
		},
		{
			name:  "full line comment dropped",
			input: "# clock definitions\ncreate_clock -period 10",
			want:  []logicalCommand{{2, "create_clock -period 10"}},
		},
		{
			name:  "trailing comment stripped",
			input: "create_clock -period 10 # system clock",
			want:  []logicalCommand{{1, "create_clock -period 10"}},
		},
		{
			name:  "hash inside braces preserved",
			input: "set_input_delay 1.0 [get_ports {a#b}]",
			want:  []logicalCommand{{1, "set_input_delay 1.0 [get_ports {a#b}]"}},
		},
		{
			name:  "hash after balanced groups is a comment",
			input: "set_input_delay 1.0 [get_ports a] # late data",
			want:  []logicalCommand{{1, "set_input_delay 1.0 [get_ports a]"}},
		},
		{
			name:  "hash inside quotes preserved",
			input: "foo \"a#b\" # real comment",
			want:  []logicalCommand{{1, "foo \"a#b\""}},
		},
		{
			name:  "continuation joined with first line number",
			input: "# header\ncreate_clock -period 5 \\\n-name clk1 [get_ports c]",
			want:  []logicalCommand{{2, "create_clock -period 5 -name clk1 [get_ports c]"}},
		},
		{
			name:  "double continuation",
			input: "set_false_path \\\n-from [get_clocks a] \\\n-to [get_clocks b]",
			want:  []logicalCommand{{1, "set_false_path -from [get_clocks a] -to [get_clocks b]"}},
		},
		{
			name:  "continuation with trailing spaces before backslash",
			input: "create_clock -period 5 \\  \ncontinued",
			want:  []logicalCommand{{1, "create_clock -period 5 continued"}},
		},
		{
			name:  "unterminated trailing continuation still emitted",
			input: "create_clock -period 5 \\",
			want:  []logicalCommand{{1, "create_clock -period 5"}},
		},
		{
			name:  "windows line endings",
			input: "create_clock -period 10\r\nset_max_delay 3 -from a\r\n",
			want: []logicalCommand{
				{1, "create_clock -period 10"},
				{2, "set_max_delay 3 -from a"},
			},
		},
		{
			name:  "comment swallows its continuation",
			input: "create_clock -period 10 # note \\\nstill part of the comment",
			want:  []logicalCommand{{1, "create_clock -period 10"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLogicalCommands(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d commands, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].line != tt.want[i].line {
					t.Errorf("command %d line = %d, want %d", i, got[i].line, tt.want[i].line)
				}
				if got[i].text != tt.want[i].text {
					t.Errorf("command %d text = %q, want %q", i, got[i].text, tt.want[i].text)
				}
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"no comment", "create_clock -period 10", "create_clock -period 10"},
		{"plain comment", "foo # bar", "foo "},
		{"hash in brackets", "[a#b] # real", "[a#b] "},
		{"hash in braces", "{a#b}", "{a#b}"},
		{"hash in quotes", "\"a#b\"", "\"a#b\""},
		{"escaped hash", "foo \\# bar # comment", "foo \\# bar "},
		{"leading hash", "# all comment", ""},
		{"unbalanced closer tolerated", "a ] } # comment", "a ] } "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComment(tt.line); got != tt.want {
				t.Errorf("stripComment(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
