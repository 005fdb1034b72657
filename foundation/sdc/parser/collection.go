// File: collection.go
// Title: Collection Resolution
// Description: Resolves object query tokens such as [get_ports {a b}] and
//              Tcl-style brace lists into plain name lists.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation

package parser

import "strings"

// collectionKeywords are the object query commands whose bracketed calls
// resolve to the names of their arguments instead of being evaluated.
var collectionKeywords = map[string]bool{
	"get_ports":     true,
	"get_pins":      true,
	"get_nets":      true,
	"get_cells":     true,
	"get_clocks":    true,
	"get_lib_cells": true,
}

// resolveCollection extracts the design object names carried by one
// token. A bracketed query like [get_clocks {a b}] yields its argument
// names, a brace group is split as a Tcl list, a quoted string yields its
// content and any other token passes through verbatim as a single name.
// Bracketed tokens that are not object queries stay verbatim; the parser
// never evaluates Tcl.
func resolveCollection(token string) []string {
	if token == "" {
		return nil
	}
	switch token[0] {
	case '[':
		inner := strings.TrimSpace(trimGroup(token, '[', ']'))
		keyword, args := splitWord(inner)
		if collectionKeywords[keyword] {
			return splitTclList(args)
		}
		return []string{token}
	case '{':
		return splitTclList(trimGroup(token, '{', '}'))
	case '"':
		inner := trimGroup(token, '"', '"')
		if inner == "" {
			return nil
		}
		return []string{inner}
	default:
		return []string{token}
	}
}

// splitTclList splits s on whitespace at brace depth zero. An element
// wrapped in one balanced pair of braces is unwrapped and split again, so
// nested groups flatten to plain names.
func splitTclList(s string) []string {
	var names []string
	depth := 0
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		element := s[start:end]
		start = -1
		if inner, ok := braceWrapped(element); ok {
			names = append(names, splitTclList(inner)...)
			return
		}
		names = append(names, element)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == ' ' || c == '\t') && depth == 0 {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		switch c {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	flush(len(s))
	return names
}

// braceWrapped reports whether element is exactly one balanced brace
// group and returns its content.
func braceWrapped(element string) (string, bool) {
	if len(element) < 2 || element[0] != '{' || element[len(element)-1] != '}' {
		return "", false
	}
	depth := 0
	for i := 0; i < len(element); i++ {
		switch element[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(element)-1 {
				return "", false
			}
		}
	}
	if depth != 0 {
		return "", false
	}
	return element[1 : len(element)-1], true
}

// trimGroup strips a leading opener and trailing closer when present,
// tolerating groups the tokenizer closed at end of input.
func trimGroup(token string, open, close byte) string {
	s := token
	if len(s) > 0 && s[0] == open {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == close {
		s = s[:len(s)-1]
	}
	return s
}

// splitWord cuts the first whitespace-separated word off s.
func splitWord(s string) (string, string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
