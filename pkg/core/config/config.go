// Package config holds the typed mcw configuration. Files are TOML or
// YAML (detected by extension) and load through the generic foundation
// loader; defaults make every file and every section optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	coreconfig "github.com/msto63/mCW/foundation/core/config"
	mcwerror "github.com/msto63/mCW/foundation/core/error"
	"github.com/msto63/mCW/foundation/core/validation"
	"github.com/msto63/mCW/foundation/utils/filex"
)

// Config holds the complete mcw configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	SDC     SDCConfig     `toml:"sdc" yaml:"sdc"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Timing  TimingConfig  `toml:"timing" yaml:"timing"`
	Netlist NetlistConfig `toml:"netlist" yaml:"netlist"`
}

// GeneralConfig holds general tool settings
type GeneralConfig struct {
	DataDir string `toml:"data_dir" yaml:"data_dir"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// SDCConfig holds constraint parser settings
type SDCConfig struct {
	Strict        bool   `toml:"strict" yaml:"strict"`
	DefaultFormat string `toml:"default_format" yaml:"default_format"`
}

// HistoryConfig holds run history store settings. Enabled is a pointer
// so an absent key defaults to true while `enabled = false` still
// switches the store off.
type HistoryConfig struct {
	Enabled       *bool  `toml:"enabled" yaml:"enabled"`
	Path          string `toml:"path" yaml:"path"`
	RetentionDays int    `toml:"retention_days" yaml:"retention_days"`
}

// IsEnabled reports whether run history recording is active.
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// TimingConfig holds timing report analyzer settings
type TimingConfig struct {
	SlackThreshold float64 `toml:"slack_threshold" yaml:"slack_threshold"`
	MaxPaths       int     `toml:"max_paths" yaml:"max_paths"`
}

// NetlistConfig holds netlist analyzer settings
type NetlistConfig struct {
	FanoutThreshold int `toml:"fanout_threshold" yaml:"fanout_threshold"`
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	var cfg Config
	if err := coreconfig.LoadInto(path, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path values
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MCW_CONFIG environment variable
// or the default search paths. Without any config file the built-in
// defaults apply, so the tools run unconfigured.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MCW_CONFIG")
	if path == "" {
		for _, p := range SearchPaths() {
			if filex.IsFile(p) {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// SearchPaths returns the default config file locations in lookup order
func SearchPaths() []string {
	return []string{
		"./mcw.toml",
		filepath.Join(os.Getenv("HOME"), ".config/mcw/mcw.toml"),
		"/etc/mcw/mcw.toml",
	}
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// SDC
	if c.SDC.DefaultFormat == "" {
		c.SDC.DefaultFormat = "summary"
	}

	// History
	if c.History.Enabled == nil {
		enabled := true
		c.History.Enabled = &enabled
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "runs.db")
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 30
	}

	// Timing
	if c.Timing.MaxPaths == 0 {
		c.Timing.MaxPaths = 5
	}

	// Netlist
	if c.Netlist.FanoutThreshold == 0 {
		c.Netlist.FanoutThreshold = 16
	}
}

// expandEnvVars expands ${VAR} references in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = coreconfig.ExpandEnv(c.General.DataDir)
	c.History.Path = coreconfig.ExpandEnv(c.History.Path)
}

// Validate checks the configuration after defaults were applied
func (c *Config) Validate() error {
	chain := validation.NewChain("mcw-config").
		AddFunc(validateLog).
		AddFunc(validateOutputFormat).
		AddFunc(validateThresholds)

	result := chain.Validate(c)
	if result.Valid {
		return nil
	}
	return mcwerror.Newf("invalid configuration: %s", result.Errors[0].Message).
		WithCode(mcwerror.CodeInvalidConfig).
		WithContext("field", result.Errors[0].Field)
}

func validateLog(value interface{}) validation.ValidationResult {
	cfg, ok := value.(*Config)
	if !ok {
		return validation.Valid()
	}
	switch cfg.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return validation.Invalid(validation.CodeFormat, "log.level",
			fmt.Sprintf("unknown log level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json", "console":
	default:
		return validation.Invalid(validation.CodeFormat, "log.format",
			fmt.Sprintf("unknown log format %q", cfg.Log.Format))
	}
	return validation.Valid()
}

func validateOutputFormat(value interface{}) validation.ValidationResult {
	cfg, ok := value.(*Config)
	if !ok {
		return validation.Valid()
	}
	switch cfg.SDC.DefaultFormat {
	case "summary", "json":
		return validation.Valid()
	default:
		return validation.Invalid(validation.CodeFormat, "sdc.default_format",
			fmt.Sprintf("unknown output format %q", cfg.SDC.DefaultFormat))
	}
}

func validateThresholds(value interface{}) validation.ValidationResult {
	cfg, ok := value.(*Config)
	if !ok {
		return validation.Valid()
	}
	result := validation.Valid()
	if cfg.History.RetentionDays < 0 {
		result = result.Merge(validation.Invalid(validation.CodeRange, "history.retention_days",
			"retention must not be negative"))
	}
	if cfg.Timing.MaxPaths < 1 {
		result = result.Merge(validation.Invalid(validation.CodeRange, "timing.max_paths",
			"path limit must be at least one"))
	}
	if cfg.Netlist.FanoutThreshold < 1 {
		result = result.Merge(validation.Invalid(validation.CodeRange, "netlist.fanout_threshold",
			"fanout threshold must be at least one"))
	}
	return result
}
