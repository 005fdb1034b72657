// File: doc.go
// Title: Validation Package Documentation
// Description: Package documentation for the mCW validation framework.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-26
// Modified: 2026-02-26
//
// Change History:
// - 2026-02-26 v0.1.0: Initial documentation

/*
Package validation provides the small validation framework used by the
mCW tools for configuration checking and constraint-set consistency
rules.

A rule is any Validator; plain functions adapt via ValidatorFunc. Rules
compose into a Chain which runs them in order and merges their results,
so callers receive every finding in one ValidationResult instead of
stopping at the first problem:

	chain := validation.NewChain("sdc-consistency").
		AddFunc(checkDuplicateClockNames).
		AddFunc(checkWaveformEdges)
	result := chain.Validate(constraintSet)
	for _, e := range result.Errors {
		fmt.Println(e.Field, e.Message)
	}

Stock rules for required values, positive numbers, numeric ranges and
string membership live in common.go.
*/
package validation
