// File: flags.go
// Title: Flag Tables
// Description: Declarative option tables and the token fold shared by all
//              command parsers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation

package parser

import "strconv"

// flagRole describes how a recognized option consumes its argument.
type flagRole int

const (
	// roleSwitch is a bare option without an argument.
	roleSwitch flagRole = iota
	// roleValue consumes exactly one following token.
	roleValue
	// roleSwitchValue consumes a following token only when that token is
	// numeric, as in the -setup/-hold forms of set_multicycle_path.
	roleSwitchValue
)

// flagTable maps option names to their consumption role. Options missing
// from the table degrade gracefully: they consume one following token as
// an opaque argument unless that token looks like another option.
type flagTable map[string]flagRole

// argScan is the folded view of a token list: recognized switches, option
// arguments in occurrence order and bare positional tokens.
type argScan struct {
	switches   map[string]bool
	values     map[string][]string
	positional []string
}

// scanTokens folds a flag table over the token list.
func scanTokens(tokens []string, table flagTable) *argScan {
	scan := &argScan{
		switches: make(map[string]bool),
		values:   make(map[string][]string),
	}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !isFlag(tok) {
			scan.positional = append(scan.positional, tok)
			continue
		}
		role, known := table[tok]
		if !known {
			if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
				i++
			}
			continue
		}
		switch role {
		case roleSwitch:
			scan.switches[tok] = true
		case roleSwitchValue:
			scan.switches[tok] = true
			if i+1 < len(tokens) && isNumeric(tokens[i+1]) {
				scan.values[tok] = append(scan.values[tok], tokens[i+1])
				i++
			}
		case roleValue:
			if i+1 >= len(tokens) {
				scan.switches[tok] = true
				continue
			}
			scan.values[tok] = append(scan.values[tok], tokens[i+1])
			i++
		}
	}
	return scan
}

// has reports whether a switch option was present.
func (a *argScan) has(flag string) bool {
	return a.switches[flag]
}

// first returns the first argument of an option.
func (a *argScan) first(flag string) (string, bool) {
	if vals := a.values[flag]; len(vals) > 0 {
		return vals[0], true
	}
	return "", false
}

// all returns every argument of an option in occurrence order.
func (a *argScan) all(flag string) []string {
	return a.values[flag]
}

// firstNumeric returns the first positional token that parses as a
// number.
func (a *argScan) firstNumeric() (float64, bool) {
	for _, tok := range a.positional {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// names resolves every non-numeric positional token and flattens the
// results into one name list.
func (a *argScan) names() []string {
	names := []string{}
	for _, tok := range a.positional {
		if isNumeric(tok) {
			continue
		}
		names = append(names, resolveCollection(tok)...)
	}
	return names
}

// isFlag reports whether tok looks like a command option. The leading
// dash must be followed by a letter, which keeps negative numbers
// positional.
func isFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	c := tok[1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumeric(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// resolveFirst resolves a token and returns its first name.
func resolveFirst(token string) string {
	if names := resolveCollection(token); len(names) > 0 {
		return names[0]
	}
	return ""
}

// resolveEach resolves every token and flattens the results. The list is
// always allocated so records serialize with arrays instead of null.
func resolveEach(tokens []string) []string {
	names := []string{}
	for _, tok := range tokens {
		names = append(names, resolveCollection(tok)...)
	}
	return names
}
