// File: config.go
// Title: Configuration File Loading
// Description: Implements generic configuration loading for the mCW tools
//              with TOML and YAML support. The format is detected from the
//              file extension; typed configuration structs live with their
//              applications and use this loader for decoding.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-25
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-25 v0.1.0: Initial implementation with TOML support
// - 2026-03-02 v0.1.0: Added YAML support and env expansion helper

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

// Format identifies a configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML forces TOML decoding
	FormatTOML

	// FormatYAML forces YAML decoding
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// DetectFormat derives the format from a file extension. Unknown
// extensions return FormatAuto and an INVALID_CONFIG error.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, mcwerror.Newf("unsupported config file extension: %s", filepath.Ext(path)).
			WithCode(mcwerror.CodeInvalidConfig).
			WithContext("path", path)
	}
}

// LoadInto loads a configuration file into the target struct, detecting
// the format from the file extension.
func LoadInto(path string, target interface{}) error {
	return LoadWithFormat(path, FormatAuto, target)
}

// LoadWithFormat loads a configuration file with an explicit format.
func LoadWithFormat(path string, format Format, target interface{}) error {
	if format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return mcwerror.Newf("config file not found: %s", path).
				WithCode(mcwerror.CodeMissingConfig)
		}
		return mcwerror.Wrapf(err, "failed to read config file %s", path).
			WithCode(mcwerror.CodeConfigError)
	}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, target); err != nil {
			return mcwerror.Wrapf(err, "failed to decode TOML config %s", path).
				WithCode(mcwerror.CodeInvalidConfig)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, target); err != nil {
			return mcwerror.Wrapf(err, "failed to decode YAML config %s", path).
				WithCode(mcwerror.CodeInvalidConfig)
		}
	default:
		return mcwerror.Newf("unsupported config format: %s", format).
			WithCode(mcwerror.CodeInvalidConfig)
	}

	return nil
}

// ExpandEnv expands ${VAR} references in a string from the environment.
// Bare $VAR is left untouched so Tcl-style values survive.
func ExpandEnv(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		b.WriteString(os.Getenv(s[start+2 : start+end]))
		s = s[start+end+1:]
	}
	return b.String()
}
