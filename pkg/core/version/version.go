// ============================================================================
// meinCHIPWERK (mCW) - Lokale EDA-Werkzeuge
// ============================================================================
//
// Package:     version
// Description: Central version management for all tools
// Author:      Mike Stoffels with Claude
// Created:     2026-03-02
// License:     MIT
// ============================================================================

package version

// Version constants for all mCW tools
const (
	// Platform version
	Platform = "0.1.0"

	// Tool versions
	SDC     = "0.1.0"
	Timing  = "0.1.0"
	Netlist = "0.1.0"
	Runs    = "0.1.0"
	Browser = "0.1.0"
)

// Build metadata, set via -ldflags during release builds
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ToolVersion returns the version for a given tool name
func ToolVersion(name string) string {
	switch name {
	case "sdc":
		return SDC
	case "timing":
		return Timing
	case "netlist":
		return Netlist
	case "runs":
		return Runs
	case "browser":
		return Browser
	default:
		return Platform
	}
}
