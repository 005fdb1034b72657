// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for the generic configuration loader.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-25
// Modified: 2026-02-25
//
// Change History:
// - 2026-02-25 v0.1.0: Initial documentation

/*
Package config implements generic configuration file loading for the mCW
tools.

The loader decodes TOML (.toml) and YAML (.yaml, .yml) files into typed
structs; the format is detected from the file extension:

	var cfg AppConfig
	if err := config.LoadInto("/etc/mcw/mcw.toml", &cfg); err != nil {
		return err
	}

Applications define their own configuration structs with both toml and
yaml tags and apply defaults after loading. ExpandEnv expands ${VAR}
environment references in string values.
*/
package config
