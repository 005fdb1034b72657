package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/history"
	"github.com/msto63/mCW/internal/netlist"
)

var netlistFormat string

var netlistCmd = &cobra.Command{
	Use:   "netlist",
	Short: "Gate-Level-Netzlisten analysieren",
}

var netlistStatsCmd = &cobra.Command{
	Use:   "stats <datei>",
	Short: "Statistiken einer Verilog-Netzliste",
	Long: `Parst eine strukturelle Verilog-Netzliste und berechnet je Modul
die Zellverteilung, Netze mit hohem Fanout und eine Flächenschätzung
in Gate-Äquivalenten.

Beispiele:
  mcw netlist stats design.v
  mcw netlist stats --format json design.v`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlistStats,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.AddCommand(netlistStatsCmd)

	netlistStatsCmd.Flags().StringVarP(&netlistFormat, "format", "f", "text", "Ausgabeformat (text|json)")
}

func runNetlistStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if netlistFormat != "text" && netlistFormat != "json" {
		return fmt.Errorf("unbekanntes Ausgabeformat %q (erlaubt: text, json)", netlistFormat)
	}

	start := time.Now()
	modules, err := netlist.ParseFile(args[0])
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		recordRun(cfg, logger, &history.RunRecord{
			Tool:       history.ToolNetlist,
			InputFile:  args[0],
			Status:     history.StatusError,
			DurationMS: elapsed,
			Detail:     err.Error(),
		})
		return err
	}

	instances := 0
	for _, m := range modules {
		instances += len(m.Instances)
	}
	recordRun(cfg, logger, &history.RunRecord{
		Tool:       history.ToolNetlist,
		InputFile:  args[0],
		Status:     history.StatusOK,
		DurationMS: elapsed,
		Detail:     fmt.Sprintf("modules=%d instances=%d", len(modules), instances),
	})

	if netlistFormat == "json" {
		out, err := json.MarshalIndent(netlist.Stats(modules, cfg.Netlist.FanoutThreshold), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(netlist.Summary(modules, cfg.Netlist.FanoutThreshold))
	return nil
}
