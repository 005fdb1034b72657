// File: doc.go
// Title: SDC Parser Package Documentation
// Description: Package documentation for the design constraint parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial documentation

/*
Package parser turns Tcl-flavored design constraint text (SDC) into typed
constraint records.

Parsing runs in three stages. The preprocessor joins backslash-continued
lines, strips comments that sit outside bracket, brace and quote groups
and tags every logical command with the physical line it started on. The
tokenizer splits each command into words, keeping bracketed command
substitutions, brace groups and quoted strings together as single tokens.
The dispatcher hands the token list to one small parse routine per
supported command family, which folds a declarative flag table over the
tokens and resolves collection queries such as [get_ports {a b}] into
plain name lists.

	p := parser.New(parser.Options{Strict: false})
	set, err := p.Parse(text)
	if err != nil {
		return err
	}
	for _, clock := range set.Clocks {
		fmt.Println(clock.Name, clock.Period)
	}

Commands the parser does not know are preserved verbatim in the result's
Raw list. Malformed known commands are handled by the configured reporter:
strict mode aborts with a *ParseError carrying line, text and message,
lenient mode (the default) records a Diagnostic on the result and keeps
going. Parsing never evaluates Tcl; variable and expression substitution
is out of scope.
*/
package parser
