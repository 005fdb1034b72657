// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the mCW structured error type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial documentation

/*
Package error implements the structured error type used across the mCW tools.

Errors carry a machine-readable Code, a Severity derived from that code, an
optional cause chain, free-form detail lines and the name of the failing
operation. The CLI maps codes to process exit codes via Code.ExitCode, and
the log package serializes classified errors through MarshalJSON.

Typical usage:

	err := mcwerror.New("clock period must be positive").
		WithCode(mcwerror.CodeValueOutOfRange).
		WithOperation("sdc.parse").
		WithContext("line", 12)

	if mcwerror.HasCode(err, mcwerror.CodeValueOutOfRange) {
		// ...
	}

Wrapping keeps the cause chain intact and inherits the classification of an
already coded cause:

	return mcwerror.Wrap(err, "failed to load constraint file")
*/
package error
