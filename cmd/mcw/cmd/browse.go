// ============================================================================
// meinCHIPWERK (mCW) - Lokale EDA-Werkzeuge
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the mCW Constraint Browser TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-03-02
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/mCW/internal/tui/constraints"
	"github.com/spf13/cobra"
)

var sdcBrowseCmd = &cobra.Command{
	Use:     "browse <datei>",
	Aliases: []string{"browser"},
	Short:   "Startet den mCW Constraint Browser",
	Long: `Startet den interaktiven mCW Constraint Browser.

Der Browser zeigt eine geparste SDC-Datei in einer eleganten
Terminal-UI an:

  - Takte, IO-Delays, Ausnahmen, Gruppen und Uncertainties
  - Filterung nach Eintragsart (1-5)
  - Neuladen der Datei ohne Neustart

Tastenkuerzel:
  1-5         Eintragsart togglen (1=CLOCKS, 2=IO, 3=EXCEPT, 4=GROUPS, 5=UNCERT)
  0           Alle Eintragsarten anzeigen
  r           Datei neu laden
  g / G       Zum Anfang / Ende springen
  PgUp/PgDn   Scrollen
  q / Ctrl+C  Beenden`,
	Args: cobra.ExactArgs(1),
	RunE: runSDCBrowse,
}

func init() {
	sdcCmd.AddCommand(sdcBrowseCmd)

	sdcBrowseCmd.Flags().BoolVar(&sdcStrict, "strict", false, "Beim ersten fehlerhaften Kommando abbrechen")
}

func runSDCBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return constraints.Run(constraints.Config{
		Path:   args[0],
		Strict: sdcStrict || cfg.SDC.Strict,
	})
}
