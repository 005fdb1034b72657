// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the mCW logging system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-24 v0.1.0: Initial documentation

/*
Package log implements the structured, leveled logging system of the mCW
tools.

Loggers are configured by deriving clones, so components can specialize a
shared logger without side effects:

	logger := log.New().
		WithLevel(log.LevelDebug).
		WithName("sdc").
		WithRequestID(runID)

	logger.Warn("skipping malformed command", log.Fields{
		"line": 12,
	})

Three output formats exist: text (default), json and console (colored).
Timers measure operations and log their duration:

	timer := logger.StartTimer("sdc.parse")
	// ... work ...
	timer.Stop()

A package-level default logger backs the convenience functions log.Info,
log.Warn and friends; the CLI replaces it at startup via log.SetDefault.
*/
package log
