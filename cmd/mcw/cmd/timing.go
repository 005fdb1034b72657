package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/internal/history"
	"github.com/msto63/mCW/internal/sta"
)

var (
	timingFormat string
	timingPaths  int
)

var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "STA-Timing-Reports auswerten",
}

var timingReportCmd = &cobra.Command{
	Use:   "report <datei>",
	Short: "Wertet einen STA-Report aus",
	Long: `Parst einen STA-Text-Report und fasst Pfade, Verletzungen,
WNS und TNS zusammen. Die kritischsten Pfade und die Verletzungen
je Taktgruppe erscheinen in der Textausgabe.

Beispiele:
  mcw timing report timing.rpt
  mcw timing report --format json timing.rpt
  mcw timing report --paths 10 timing.rpt`,
	Args: cobra.ExactArgs(1),
	RunE: runTimingReport,
}

func init() {
	rootCmd.AddCommand(timingCmd)
	timingCmd.AddCommand(timingReportCmd)

	timingReportCmd.Flags().StringVarP(&timingFormat, "format", "f", "text", "Ausgabeformat (text|json)")
	timingReportCmd.Flags().IntVar(&timingPaths, "paths", 0, "Anzahl kritischer Pfade (default aus Config)")
}

func runTimingReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if timingFormat != "text" && timingFormat != "json" {
		return fmt.Errorf("unbekanntes Ausgabeformat %q (erlaubt: text, json)", timingFormat)
	}

	maxPaths := timingPaths
	if maxPaths <= 0 {
		maxPaths = cfg.Timing.MaxPaths
	}

	start := time.Now()
	report, err := sta.ParseFile(args[0])
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		recordRun(cfg, logger, &history.RunRecord{
			Tool:       history.ToolTiming,
			InputFile:  args[0],
			Status:     history.StatusError,
			DurationMS: elapsed,
			Detail:     err.Error(),
		})
		return err
	}

	recordRun(cfg, logger, &history.RunRecord{
		Tool:       history.ToolTiming,
		InputFile:  args[0],
		Status:     history.StatusOK,
		DurationMS: elapsed,
		Detail: fmt.Sprintf("wns=%.3f tns=%.3f violations=%d",
			report.WNS, report.TNS, report.TotalViolations),
	})

	if timingFormat == "json" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(sta.TextSummary(report, maxPaths))

	// Paths inside the slack margin are worth a look even when they meet
	// timing, so count them against the configured threshold.
	if cfg.Timing.SlackThreshold > 0 {
		margin := 0
		for _, p := range report.Paths {
			if p.Slack >= 0 && p.Slack < cfg.Timing.SlackThreshold {
				margin++
			}
		}
		if margin > 0 {
			fmt.Printf("Pfade mit Slack unter %.3f ns: %d\n", cfg.Timing.SlackThreshold, margin)
		}
	}
	return nil
}
