// File: doc.go
// Title: SDC Package Documentation
// Description: Package documentation for the design constraint facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial documentation

/*
Package sdc is the convenience entry point for parsing design constraint
files. It wraps the parser sub-package with one-call helpers and maps
file system and parse failures onto the structured error codes the mCW
tools report.

	set, err := sdc.ParseFile("top.sdc")
	if err != nil {
		return err
	}
	fmt.Println(len(set.Clocks), "clocks")

Strict parsing and a custom logger are configured through Options:

	set, err := sdc.ParseFile("top.sdc", sdc.Options{Strict: true})

Callers that need staged control over preprocessing, tokenizing and
dispatch use the parser sub-package directly.
*/
package sdc
