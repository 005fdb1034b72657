// File: chain.go
// Title: Validator Chain
// Description: Composable validator chains for running several validation
//              rules against one value and combining their results.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-26
// Modified: 2026-02-26
//
// Change History:
// - 2026-02-26 v0.1.0: Initial chain implementation

package validation

import (
	"context"
	"fmt"
)

// Chain runs validators in registration order and merges their results.
// By default every validator runs and all errors are collected; with
// StopOnFirstError the chain stops at the first failing rule.
type Chain struct {
	name             string
	validators       []Validator
	stopOnFirstError bool
}

// NewChain creates an empty validator chain. The optional name shows up
// in String output and eases debugging of larger rule sets.
func NewChain(name ...string) *Chain {
	c := &Chain{}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// Add appends a validator to the chain
func (c *Chain) Add(v Validator) *Chain {
	c.validators = append(c.validators, v)
	return c
}

// AddFunc appends a validator function to the chain
func (c *Chain) AddFunc(fn ValidatorFunc) *Chain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError makes the chain abort after the first failing rule
func (c *Chain) StopOnFirstError() *Chain {
	c.stopOnFirstError = true
	return c
}

// Len returns the number of registered validators
func (c *Chain) Len() int {
	return len(c.validators)
}

// Validate implements the Validator interface
func (c *Chain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext runs every validator against the value and merges
// the results. Context cancellation stops the chain between rules.
func (c *Chain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	result := Valid()
	for _, v := range c.validators {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return result.Merge(Invalid(CodeCustom, c.name, "validation cancelled: "+err.Error()))
			}
		}
		result = result.Merge(v.ValidateWithContext(ctx, value))
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return result
}

// String describes the chain for debug output
func (c *Chain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("Chain{name: %s, validators: %d}", name, len(c.validators))
}
