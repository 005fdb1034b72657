package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	"github.com/msto63/mCW/foundation/sdc"
	"github.com/msto63/mCW/foundation/utils/filex"
	"github.com/msto63/mCW/internal/analyze"
	"github.com/msto63/mCW/internal/history"
)

var (
	sdcFormat string
	sdcOutput string
	sdcStrict bool
)

var sdcCmd = &cobra.Command{
	Use:   "sdc",
	Short: "SDC-Constraints parsen und prüfen",
	Long: `Werkzeuge für SDC-Constraint-Dateien: Parsen, Konsistenzprüfung
und interaktives Durchsuchen.`,
}

var sdcParseCmd = &cobra.Command{
	Use:   "parse <datei>",
	Short: "Parst eine SDC-Datei",
	Long: `Parst eine SDC-Constraint-Datei und gibt Takte, IO-Delays,
Timing-Ausnahmen und unbekannte Kommandos aus.

Im Lenient-Modus (Standard) werden fehlerhafte Kommandos übersprungen
und als Diagnosen gesammelt; --strict bricht beim ersten Fehler ab.

Beispiele:
  mcw sdc parse design.sdc
  mcw sdc parse --format json design.sdc
  mcw sdc parse --strict --output constraints.json design.sdc`,
	Args: cobra.ExactArgs(1),
	RunE: runSDCParse,
}

var sdcCheckCmd = &cobra.Command{
	Use:   "check <datei>",
	Short: "Prüft Constraints auf Konsistenz",
	Long: `Prüft eine SDC-Datei auf Konsistenzprobleme: doppelte Taktnamen,
Waveform-Flanken außerhalb der Periode, IO-Delays mit unbekanntem
Takt und Multicycle-Faktoren unter eins.

Der Exit-Code bleibt 0, solange nur Warnungen gefunden werden;
mit --strict führen Fehler-Befunde zu Exit-Code 1.

Beispiele:
  mcw sdc check design.sdc
  mcw sdc check --strict design.sdc`,
	Args: cobra.ExactArgs(1),
	RunE: runSDCCheck,
}

func init() {
	rootCmd.AddCommand(sdcCmd)
	sdcCmd.AddCommand(sdcParseCmd)
	sdcCmd.AddCommand(sdcCheckCmd)

	sdcParseCmd.Flags().StringVarP(&sdcFormat, "format", "f", "", "Ausgabeformat (summary|json, default aus Config)")
	sdcParseCmd.Flags().StringVarP(&sdcOutput, "output", "o", "", "Ergebnis in Datei schreiben statt auf stdout")
	sdcParseCmd.Flags().BoolVar(&sdcStrict, "strict", false, "Beim ersten fehlerhaften Kommando abbrechen")
	sdcCheckCmd.Flags().BoolVar(&sdcStrict, "strict", false, "Fehler-Befunde führen zu Exit-Code 1")
}

func runSDCParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	format := sdcFormat
	if format == "" {
		format = cfg.SDC.DefaultFormat
	}
	if format != "summary" && format != "json" {
		return fmt.Errorf("unbekanntes Ausgabeformat %q (erlaubt: summary, json)", format)
	}

	start := time.Now()
	set, err := sdc.ParseFile(args[0], sdc.Options{Strict: sdcStrict || cfg.SDC.Strict, Logger: logger})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		recordRun(cfg, logger, &history.RunRecord{
			Tool:       history.ToolSDC,
			InputFile:  args[0],
			Status:     history.StatusError,
			DurationMS: elapsed,
			Detail:     err.Error(),
		})
		return err
	}

	run := &history.RunRecord{
		Tool:        history.ToolSDC,
		InputFile:   args[0],
		Status:      history.StatusOK,
		DurationMS:  elapsed,
		Clocks:      len(set.Clocks),
		IODelays:    len(set.IODelays),
		Exceptions:  len(set.Exceptions),
		RawCommands: len(set.Raw),
		Diagnostics: len(set.Diagnostics),
	}
	if report := analyze.Analyze(set); report.FastestClock != "" {
		run.Detail = "fastest_clock=" + report.FastestClock
	}
	recordRun(cfg, logger, run)

	var out []byte
	if format == "json" {
		out, err = analyze.RenderJSON(set)
		if err != nil {
			return err
		}
		out = append(out, '\n')
	} else {
		out = []byte(analyze.Summary(set, args[0]))
	}

	if sdcOutput != "" {
		if err := filex.WriteFileAtomic(sdcOutput, out, 0644); err != nil {
			return fmt.Errorf("Ausgabedatei konnte nicht geschrieben werden: %v", err)
		}
		fmt.Printf("Ergebnis geschrieben nach %s\n", sdcOutput)
		return nil
	}

	fmt.Print(string(out))
	return nil
}

func runSDCCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	start := time.Now()
	set, err := sdc.ParseFile(args[0], sdc.Options{Strict: sdcStrict || cfg.SDC.Strict, Logger: logger})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		recordRun(cfg, logger, &history.RunRecord{
			Tool:       history.ToolSDC,
			InputFile:  args[0],
			Status:     history.StatusError,
			DurationMS: elapsed,
			Detail:     err.Error(),
		})
		return err
	}

	findings := analyze.Check(set)
	recordRun(cfg, logger, &history.RunRecord{
		Tool:        history.ToolSDC,
		InputFile:   args[0],
		Status:      history.StatusOK,
		DurationMS:  elapsed,
		Clocks:      len(set.Clocks),
		IODelays:    len(set.IODelays),
		Exceptions:  len(set.Exceptions),
		RawCommands: len(set.Raw),
		Diagnostics: len(set.Diagnostics),
		Detail:      fmt.Sprintf("findings=%d", len(findings)),
	})

	if len(findings) == 0 {
		fmt.Println("Keine Auffälligkeiten gefunden.")
		return nil
	}

	fmt.Printf("%d Auffälligkeit(en) gefunden:\n", len(findings))
	for _, f := range findings {
		marker := "[W]"
		if f.Severity == analyze.SeverityError {
			marker = "[E]"
		}
		fmt.Printf("  %s %s: %s\n", marker, f.Code, f.Message)
	}

	if sdcStrict && analyze.HasErrors(findings) {
		return mcwerror.New("Konsistenzprüfung fehlgeschlagen").
			WithCode(mcwerror.CodeValidationFailed)
	}
	return nil
}
