// File: parser.go
// Title: SDC Parser
// Description: Parser construction and the command dispatch loop turning
//              constraint text into a ConstraintSet.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation
// - 2026-03-05 v0.1.0: Unmodeled sizing commands consumed without record

package parser

import (
	mcwlog "github.com/msto63/mCW/foundation/core/log"
)

// Options configures a Parser.
type Options struct {
	// Strict aborts at the first malformed command instead of skipping
	// it.
	Strict bool
	// Logger receives parse traces. The package default logger is used
	// when nil.
	Logger *mcwlog.Logger
}

// Parser turns constraint text into typed records. A Parser is stateless
// across calls and safe for reuse; every Parse call returns a fresh
// ConstraintSet.
type Parser struct {
	strict bool
	logger *mcwlog.Logger
	rep    reporter
}

// New creates a Parser.
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = mcwlog.Default()
	}
	logger = logger.WithField("component", "sdc-parser")

	p := &Parser{strict: opts.Strict, logger: logger}
	if opts.Strict {
		p.rep = strictReporter{}
	} else {
		p.rep = lenientReporter{logger: logger}
	}
	return p
}

// Parse processes constraint text and returns the collected records. In
// strict mode the first malformed command aborts with a *ParseError; in
// lenient mode malformed commands become diagnostics on the result and
// parsing continues. Unrecognized commands are kept verbatim in Raw in
// both modes.
func (p *Parser) Parse(input string) (*ConstraintSet, error) {
	result := NewConstraintSet()
	commands := splitLogicalCommands(input)
	p.logger.Debug("parsing constraints", mcwlog.Fields{
		"commands": len(commands),
		"strict":   p.strict,
	})

	for _, cmd := range commands {
		if err := p.dispatch(cmd, result); err != nil {
			return nil, err
		}
	}

	p.logger.Debug("constraints parsed", mcwlog.Fields{
		"clocks":      len(result.Clocks),
		"io_delays":   len(result.IODelays),
		"exceptions":  len(result.Exceptions),
		"raw":         len(result.Raw),
		"diagnostics": len(result.Diagnostics),
	})
	return result, nil
}

func (p *Parser) dispatch(cmd logicalCommand, result *ConstraintSet) error {
	tokens := tokenize(cmd.text)
	if len(tokens) == 0 {
		return nil
	}
	name, args := tokens[0], tokens[1:]
	p.logger.Trace("dispatching command", mcwlog.Fields{
		"command": name,
		"line":    cmd.line,
		"tokens":  len(tokens),
	})

	var perr *ParseError
	switch name {
	case "create_clock":
		var clock *ClockConstraint
		if clock, perr = parseCreateClock(args); perr == nil {
			result.Clocks = append(result.Clocks, *clock)
		}
	case "set_input_delay":
		var records []IODelay
		if records, perr = parseIODelay(name, args, DelayInput); perr == nil {
			result.IODelays = append(result.IODelays, records...)
		}
	case "set_output_delay":
		var records []IODelay
		if records, perr = parseIODelay(name, args, DelayOutput); perr == nil {
			result.IODelays = append(result.IODelays, records...)
		}
	case "set_false_path":
		var exc *TimingException
		if exc, perr = parseFalsePath(args); perr == nil {
			result.Exceptions = append(result.Exceptions, *exc)
		}
	case "set_multicycle_path":
		var exc *TimingException
		if exc, perr = parseMulticyclePath(args); perr == nil {
			result.Exceptions = append(result.Exceptions, *exc)
		}
	case "set_max_delay":
		var exc *TimingException
		if exc, perr = parseDelayException(name, args, ExceptionMaxDelay); perr == nil {
			result.Exceptions = append(result.Exceptions, *exc)
		}
	case "set_min_delay":
		var exc *TimingException
		if exc, perr = parseDelayException(name, args, ExceptionMinDelay); perr == nil {
			result.Exceptions = append(result.Exceptions, *exc)
		}
	case "set_clock_groups":
		var group *ClockGroup
		if group, perr = parseClockGroups(args); perr == nil {
			result.ClockGroups = append(result.ClockGroups, *group)
		}
	case "set_clock_uncertainty":
		var unc *ClockUncertainty
		if unc, perr = parseClockUncertainty(args); perr == nil {
			result.Uncertainties = append(result.Uncertainties, *unc)
		}
	case "set_load", "set_driving_cell":
		// Electrical sizing commands are recognized so they neither
		// land in Raw nor trip the reporter.
		return nil
	default:
		result.Raw = append(result.Raw, cmd.text)
		return nil
	}

	if perr != nil {
		perr.Line = cmd.line
		perr.Text = cmd.text
		return p.rep.report(perr, result)
	}
	return nil
}
