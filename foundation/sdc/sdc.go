// File: sdc.go
// Title: SDC Facade
// Description: One-call parsing API over the parser sub-package with
//              structured error classification for the CLI.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation

package sdc

import (
	"errors"
	"os"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	mcwlog "github.com/msto63/mCW/foundation/core/log"
	"github.com/msto63/mCW/foundation/sdc/parser"
)

// Options configures the facade helpers.
type Options struct {
	// Strict aborts at the first malformed command instead of collecting
	// diagnostics.
	Strict bool

	// Logger for parse traces (optional, defaults to the default logger)
	Logger *mcwlog.Logger
}

// Parse processes constraint text. Parse failures in strict mode come
// back as structured errors carrying the parser's error code, so the CLI
// maps them to exit codes without inspecting parser internals.
func Parse(input string, opts ...Options) (*parser.ConstraintSet, error) {
	o := firstOption(opts)
	p := parser.New(parser.Options{Strict: o.Strict, Logger: o.Logger})
	set, err := p.Parse(input)
	if err != nil {
		return nil, classify(err)
	}
	return set, nil
}

// ParseFile reads and parses one constraint file. A missing file maps to
// the NOT_FOUND error code.
func ParseFile(path string, opts ...Options) (*parser.ConstraintSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcwerror.Wrapf(err, "constraint file %s not found", path).
				WithCode(mcwerror.CodeNotFound).
				WithOperation("sdc.read")
		}
		return nil, mcwerror.Wrapf(err, "reading constraint file %s failed", path).
			WithOperation("sdc.read")
	}
	return Parse(string(data), opts...)
}

// classify lifts a *parser.ParseError into the structured error type,
// keeping the parser's code. Other errors pass through unchanged.
func classify(err error) error {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		return mcwerror.Wrap(err, "constraint parsing failed").
			WithCode(perr.Code).
			WithOperation("sdc.parse")
	}
	return err
}

func firstOption(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}
