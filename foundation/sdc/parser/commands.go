// File: commands.go
// Title: Command Parsers
// Description: One parse routine per supported constraint command family,
//              each folding a flag table over the token list.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation
// - 2026-03-05 v0.1.0: Clock group and uncertainty commands

package parser

import (
	"strconv"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

var createClockFlags = flagTable{
	"-name":     roleValue,
	"-period":   roleValue,
	"-waveform": roleValue,
	"-add":      roleSwitch,
}

// parseCreateClock builds a clock record. The period is mandatory; the
// source is the first name of the first non-numeric positional token.
func parseCreateClock(tokens []string) (*ClockConstraint, *ParseError) {
	scan := scanTokens(tokens, createClockFlags)

	raw, ok := scan.first("-period")
	if !ok {
		return nil, newParseError(mcwerror.CodeSDCSyntax, "create_clock requires -period")
	}
	period, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, newParseError(mcwerror.CodeSDCValue, "invalid clock period %q", raw)
	}

	var waveform []float64
	if tok, ok := scan.first("-waveform"); ok {
		for _, edge := range resolveCollection(tok) {
			v, err := strconv.ParseFloat(edge, 64)
			if err != nil {
				return nil, newParseError(mcwerror.CodeSDCValue, "invalid waveform edge %q", edge)
			}
			waveform = append(waveform, v)
		}
	}

	var name string
	if tok, ok := scan.first("-name"); ok {
		name = resolveFirst(tok)
	}
	var source string
	if names := scan.names(); len(names) > 0 {
		source = names[0]
	}

	clock, err := NewClockConstraint(name, period, waveform, source)
	if err != nil {
		return nil, newParseError(mcwerror.CodeSDCValue, "%s", err.Error())
	}
	return clock, nil
}

var ioDelayFlags = flagTable{
	"-clock":                    roleValue,
	"-min":                      roleSwitch,
	"-max":                      roleSwitch,
	"-rise":                     roleSwitch,
	"-fall":                     roleSwitch,
	"-add_delay":                roleSwitch,
	"-clock_fall":               roleSwitch,
	"-network_latency_included": roleSwitch,
	"-source_latency_included":  roleSwitch,
}

// parseIODelay expands one set_input_delay or set_output_delay command
// into one record per resolved pin. The delay value is the first numeric
// positional token; a command that resolves zero pins yields zero records
// without being an error.
func parseIODelay(command string, tokens []string, direction DelayType) ([]IODelay, *ParseError) {
	scan := scanTokens(tokens, ioDelayFlags)

	value, ok := scan.firstNumeric()
	if !ok {
		return nil, newParseError(mcwerror.CodeSDCSyntax, "%s requires a delay value", command)
	}

	var clock string
	if tok, ok := scan.first("-clock"); ok {
		clock = resolveFirst(tok)
	}

	var records []IODelay
	for _, pin := range scan.names() {
		records = append(records, IODelay{
			Pin:        pin,
			Clock:      clock,
			DelayValue: value,
			DelayType:  direction,
			MinDelay:   scan.has("-min"),
			MaxDelay:   scan.has("-max"),
		})
	}
	return records, nil
}

var pathFlags = flagTable{
	"-from":    roleValue,
	"-to":      roleValue,
	"-through": roleValue,
	"-setup":   roleSwitch,
	"-hold":    roleSwitch,
}

// parseFalsePath collects the -from and -to endpoint lists. -through
// endpoints are consumed but intentionally not modeled.
func parseFalsePath(tokens []string) (*TimingException, *ParseError) {
	scan := scanTokens(tokens, pathFlags)
	return &TimingException{
		ExceptionType: ExceptionFalsePath,
		From:          resolveEach(scan.all("-from")),
		To:            resolveEach(scan.all("-to")),
	}, nil
}

var multicycleFlags = flagTable{
	"-from":            roleValue,
	"-to":              roleValue,
	"-through":         roleValue,
	"-setup":           roleSwitchValue,
	"-hold":            roleSwitchValue,
	"-path_multiplier": roleSwitchValue,
	"-start":           roleSwitch,
	"-end":             roleSwitch,
}

// parseMulticyclePath builds a multicycle exception. The multiplier comes
// from an explicit -setup magnitude first, then -hold, then
// -path_multiplier, then the first bare numeric token; a command carrying
// none of them keeps a nil value.
func parseMulticyclePath(tokens []string) (*TimingException, *ParseError) {
	scan := scanTokens(tokens, multicycleFlags)

	var value *float64
	for _, flag := range []string{"-setup", "-hold", "-path_multiplier"} {
		if raw, ok := scan.first(flag); ok {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, newParseError(mcwerror.CodeSDCValue, "invalid path multiplier %q", raw)
			}
			value = &v
			break
		}
	}
	if value == nil {
		if v, ok := scan.firstNumeric(); ok {
			value = &v
		}
	}

	return &TimingException{
		ExceptionType: ExceptionMulticycle,
		From:          resolveEach(scan.all("-from")),
		To:            resolveEach(scan.all("-to")),
		Value:         value,
	}, nil
}

// parseDelayException builds a set_max_delay or set_min_delay exception.
// The delay bound is mandatory.
func parseDelayException(command string, tokens []string, kind ExceptionType) (*TimingException, *ParseError) {
	scan := scanTokens(tokens, pathFlags)

	value, ok := scan.firstNumeric()
	if !ok {
		return nil, newParseError(mcwerror.CodeSDCSyntax, "%s requires a delay value", command)
	}

	return &TimingException{
		ExceptionType: kind,
		From:          resolveEach(scan.all("-from")),
		To:            resolveEach(scan.all("-to")),
		Value:         &value,
	}, nil
}

var clockGroupsFlags = flagTable{
	"-name":                 roleValue,
	"-group":                roleValue,
	"-logically_exclusive":  roleSwitch,
	"-physically_exclusive": roleSwitch,
	"-asynchronous":         roleSwitch,
	"-allow_paths":          roleSwitch,
}

// parseClockGroups builds one record per command; every -group occurrence
// contributes one name list. At least one group is required.
func parseClockGroups(tokens []string) (*ClockGroup, *ParseError) {
	scan := scanTokens(tokens, clockGroupsFlags)

	groups := [][]string{}
	for _, tok := range scan.all("-group") {
		groups = append(groups, resolveEach([]string{tok}))
	}
	if len(groups) == 0 {
		return nil, newParseError(mcwerror.CodeSDCSyntax, "set_clock_groups requires at least one -group")
	}

	var name string
	if tok, ok := scan.first("-name"); ok {
		name = resolveFirst(tok)
	}

	return &ClockGroup{
		Name:   name,
		Groups: groups,
		Exclusive: scan.has("-logically_exclusive") ||
			scan.has("-physically_exclusive") ||
			scan.has("-asynchronous"),
	}, nil
}

var uncertaintyFlags = flagTable{
	"-setup": roleSwitch,
	"-hold":  roleSwitch,
	"-from":  roleValue,
	"-to":    roleValue,
}

// parseClockUncertainty builds an uncertainty record. The uncertainty
// value is mandatory; -from/-to targets are consumed but not modeled.
func parseClockUncertainty(tokens []string) (*ClockUncertainty, *ParseError) {
	scan := scanTokens(tokens, uncertaintyFlags)

	value, ok := scan.firstNumeric()
	if !ok {
		return nil, newParseError(mcwerror.CodeSDCSyntax, "set_clock_uncertainty requires a value")
	}

	return &ClockUncertainty{
		Value:   value,
		Objects: scan.names(),
		Setup:   scan.has("-setup"),
		Hold:    scan.has("-hold"),
	}, nil
}
