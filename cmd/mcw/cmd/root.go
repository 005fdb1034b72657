package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mcwlog "github.com/msto63/mCW/foundation/core/log"
	"github.com/msto63/mCW/internal/history"
	"github.com/msto63/mCW/pkg/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mcw",
	Short: "meinCHIPWERK - Lokale EDA-Werkzeuge",
	Long: `meinCHIPWERK ist eine Sammlung leichtgewichtiger, lokal laufender
EDA-Werkzeuge für den Einzelarbeitsplatz.

Werkzeuge:
  sdc      - SDC-Constraints parsen, prüfen und durchsuchen
  timing   - STA-Timing-Reports auswerten
  netlist  - Gate-Level-Netzlisten analysieren
  runs     - Analyse-Historie verwalten`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./mcw.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig resolves the configuration from --config, MCW_CONFIG or the
// default search paths.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger builds the CLI logger from the config; --verbose lowers the
// level to debug.
func newLogger(cfg *config.Config) *mcwlog.Logger {
	level, err := mcwlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = mcwlog.LevelInfo
	}
	if verbose {
		level = mcwlog.LevelDebug
	}
	format, err := mcwlog.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = mcwlog.FormatText
	}
	return mcwlog.New().
		WithLevel(level).
		WithFormat(format).
		WithName("mcw").
		WithRequestID(uuid.NewString())
}

// recordRun appends one run to the history store. Failures only log a
// warning, the analysis output must not depend on the store.
func recordRun(cfg *config.Config, logger *mcwlog.Logger, run *history.RunRecord) {
	if !cfg.History.IsEnabled() {
		return
	}

	store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: cfg.History.Path})
	if err != nil {
		logger.Warn("run history unavailable", mcwlog.Fields{"error": err.Error()})
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), run); err != nil {
		logger.Warn("recording run failed", mcwlog.Fields{"error": err.Error()})
	}
}
