// File: example_test.go
// Title: Error Package Examples
// Description: Runnable examples for the structured error type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial examples

package error_test

import (
	"fmt"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

func ExampleNew() {
	err := mcwerror.New("clock period must be positive").
		WithCode(mcwerror.CodeValueOutOfRange).
		WithOperation("sdc.parse")

	fmt.Println(err.Error())
	fmt.Println(err.Code())
	fmt.Println(err.Severity())
	// Output:
	// clock period must be positive
	// VALUE_OUT_OF_RANGE
	// low
}

func ExampleWrap() {
	inner := mcwerror.New("input file not found").WithCode(mcwerror.CodeNotFound)
	outer := mcwerror.Wrap(inner, "failed to parse constraints")

	fmt.Println(outer.Error())
	fmt.Println(mcwerror.GetCode(outer))
	fmt.Println(mcwerror.GetCode(outer).ExitCode())
	// Output:
	// failed to parse constraints: input file not found
	// NOT_FOUND
	// 2
}
