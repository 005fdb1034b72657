// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map utility functions used across the mCW tools,
//              primarily deterministic key ordering for report output and
//              key/value extraction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation with key ordering helpers

package mapx

import (
	"cmp"
	"sort"
)

// Keys returns a slice of all keys from the map in iteration order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns all keys of the map in ascending order. Report and
// summary output iterates maps through this to stay deterministic.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Values returns a slice of all values from the map in iteration order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
