// File: types.go
// Title: Constraint Records
// Description: Typed records produced by the parser: clocks, IO delays,
//              timing exceptions, clock groups and uncertainties.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation
// - 2026-03-04 v0.1.0: JSON enum round trip for delay and exception types

package parser

import (
	"encoding/json"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	"github.com/msto63/mCW/foundation/utils/stringx"
)

// DelayType distinguishes input from output delay constraints.
type DelayType int

// Delay directions.
const (
	DelayInput DelayType = iota
	DelayOutput
)

// String returns the wire name of the delay direction.
func (d DelayType) String() string {
	if d == DelayOutput {
		return "output"
	}
	return "input"
}

// MarshalJSON encodes the direction as its wire name.
func (d DelayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its wire name.
func (d *DelayType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "input":
		*d = DelayInput
	case "output":
		*d = DelayOutput
	default:
		return mcwerror.Newf("unknown delay type %q", s).
			WithCode(mcwerror.CodeInvalidFormat)
	}
	return nil
}

// ExceptionType classifies timing exception records.
type ExceptionType int

// Exception kinds.
const (
	ExceptionFalsePath ExceptionType = iota
	ExceptionMulticycle
	ExceptionMaxDelay
	ExceptionMinDelay
)

var exceptionNames = map[ExceptionType]string{
	ExceptionFalsePath:  "false_path",
	ExceptionMulticycle: "multicycle_path",
	ExceptionMaxDelay:   "max_delay",
	ExceptionMinDelay:   "min_delay",
}

// String returns the wire name of the exception kind.
func (t ExceptionType) String() string {
	if name, ok := exceptionNames[t]; ok {
		return name
	}
	return "false_path"
}

// MarshalJSON encodes the exception kind as its wire name.
func (t ExceptionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an exception kind from its wire name.
func (t *ExceptionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range exceptionNames {
		if name == s {
			*t = kind
			return nil
		}
	}
	return mcwerror.Newf("unknown exception type %q", s).
		WithCode(mcwerror.CodeInvalidFormat)
}

// ClockConstraint is one create_clock definition. Period is in
// nanoseconds, Waveform holds the rise and fall edge offsets and Source
// is the first design object the clock was attached to.
type ClockConstraint struct {
	Name     string     `json:"name"`
	Period   float64    `json:"period"`
	Waveform [2]float64 `json:"waveform"`
	Source   string     `json:"source"`
}

// NewClockConstraint builds a clock record and enforces its invariants:
// the period must be positive and an explicit waveform must list exactly
// two edges. A missing waveform defaults to [0, period/2]; a blank name
// falls back to the source name, then to "unnamed".
func NewClockConstraint(name string, period float64, waveform []float64, source string) (*ClockConstraint, error) {
	if period <= 0 {
		return nil, mcwerror.Newf("clock period must be positive, got %g", period).
			WithCode(mcwerror.CodeValueOutOfRange)
	}
	edges := [2]float64{0, period / 2}
	if len(waveform) > 0 {
		if len(waveform) != 2 {
			return nil, mcwerror.Newf("waveform must list exactly two edges, got %d", len(waveform)).
				WithCode(mcwerror.CodeValueOutOfRange)
		}
		edges[0], edges[1] = waveform[0], waveform[1]
	}
	if stringx.IsBlank(name) {
		name = stringx.FirstNonBlank(source, "unnamed")
	}
	return &ClockConstraint{Name: name, Period: period, Waveform: edges, Source: source}, nil
}

// FrequencyMHz derives the clock frequency from the period in
// nanoseconds.
func (c ClockConstraint) FrequencyMHz() float64 {
	return 1000.0 / c.Period
}

// IODelay is one pin of a set_input_delay or set_output_delay command.
// Commands naming several pins expand to one record per pin.
type IODelay struct {
	Pin        string    `json:"pin"`
	Clock      string    `json:"clock"`
	DelayValue float64   `json:"delay_value"`
	DelayType  DelayType `json:"delay_type"`
	MinDelay   bool      `json:"min_delay"`
	MaxDelay   bool      `json:"max_delay"`
}

// TimingException is one false path, multicycle path or min/max delay
// record. Value carries the cycle multiplier or delay bound and stays nil
// for false paths.
type TimingException struct {
	ExceptionType ExceptionType `json:"exception_type"`
	From          []string      `json:"from_list"`
	To            []string      `json:"to_list"`
	Value         *float64      `json:"value,omitempty"`
}

// ClockGroup is one set_clock_groups command. Every -group occurrence
// contributes one name list; Exclusive reports whether the groups were
// declared logically or physically exclusive or asynchronous.
type ClockGroup struct {
	Name      string     `json:"name"`
	Groups    [][]string `json:"groups"`
	Exclusive bool       `json:"exclusive"`
}

// ClockUncertainty is one set_clock_uncertainty command.
type ClockUncertainty struct {
	Value   float64  `json:"value"`
	Objects []string `json:"objects"`
	Setup   bool     `json:"setup"`
	Hold    bool     `json:"hold"`
}

// Diagnostic describes one malformed command skipped in lenient mode.
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

// ConstraintSet is the aggregate result of one parse run.
type ConstraintSet struct {
	Clocks        []ClockConstraint  `json:"clocks"`
	IODelays      []IODelay          `json:"io_delays"`
	Exceptions    []TimingException  `json:"exceptions"`
	ClockGroups   []ClockGroup       `json:"clock_groups"`
	Uncertainties []ClockUncertainty `json:"uncertainties"`
	Raw           []string           `json:"raw_commands"`
	Diagnostics   []Diagnostic       `json:"diagnostics"`
}

// NewConstraintSet returns an empty set with every collection allocated,
// so JSON output always carries arrays instead of null.
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{
		Clocks:        []ClockConstraint{},
		IODelays:      []IODelay{},
		Exceptions:    []TimingException{},
		ClockGroups:   []ClockGroup{},
		Uncertainties: []ClockUncertainty{},
		Raw:           []string{},
		Diagnostics:   []Diagnostic{},
	}
}

// Clock returns the first clock with the given name.
func (s *ConstraintSet) Clock(name string) (*ClockConstraint, bool) {
	for i := range s.Clocks {
		if s.Clocks[i].Name == name {
			return &s.Clocks[i], true
		}
	}
	return nil, false
}
