package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mCW/foundation/utils/mapx"
	"github.com/msto63/mCW/internal/history"
	"github.com/msto63/mCW/pkg/core/config"
)

var (
	runsDB        string
	runsLimit     int
	runsTool      string
	runsStatus    string
	runsOlderThan int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Analyse-Historie verwalten",
	Long: `Verwaltet die gespeicherte Historie der Analyse-Läufe.

Jeder Aufruf von sdc parse/check, timing report und netlist stats
legt einen Eintrag in der Historien-Datenbank ab (sofern nicht in
der Config deaktiviert).`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet gespeicherte Läufe",
	Long: `Listet die gespeicherten Analyse-Läufe, neueste zuerst.

Beispiele:
  mcw runs list
  mcw runs list --tool sdc --limit 10
  mcw runs list --status error`,
	RunE: runRunsList,
}

var runsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Zeigt Statistiken über die Historie",
	RunE:  runRunsStats,
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Entfernt alte Läufe",
	Long: `Entfernt Läufe, die älter als die angegebene Anzahl Tage sind.
Ohne --older-than gilt retention_days aus der Config.

Beispiele:
  mcw runs prune
  mcw runs prune --older-than 7`,
	RunE: runRunsPrune,
}

var runsVacuumCmd = &cobra.Command{
	Use:   "vacuum",
	Short: "Kompaktiert die Historien-Datenbank",
	RunE:  runRunsVacuum,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsStatsCmd)
	runsCmd.AddCommand(runsPruneCmd)
	runsCmd.AddCommand(runsVacuumCmd)

	runsCmd.PersistentFlags().StringVar(&runsDB, "db", "", "Pfad zur Historien-Datenbank (default aus Config)")
	runsListCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximale Anzahl Läufe")
	runsListCmd.Flags().StringVar(&runsTool, "tool", "", "Nur Läufe dieses Werkzeugs (sdc|timing|netlist)")
	runsListCmd.Flags().StringVar(&runsStatus, "status", "", "Nur Läufe mit diesem Status (ok|error)")
	runsPruneCmd.Flags().IntVar(&runsOlderThan, "older-than", 0, "Alter in Tagen (default: retention_days aus Config)")
}

// openRunStore resolves the database path from --db or the config and
// opens the SQLite store.
func openRunStore() (history.RunStore, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	path := runsDB
	if path == "" {
		path = cfg.History.Path
	}

	store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: path})
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	store, _, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Query(context.Background(), history.RunFilter{
		Tool:   runsTool,
		Status: runsStatus,
		Limit:  runsLimit,
	})
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("Keine Läufe gespeichert.")
		return nil
	}

	fmt.Printf("%-19s  %-8s %-6s %8s  %s\n", "ZEITPUNKT", "WERKZEUG", "STATUS", "DAUER", "DATEI")
	for _, r := range runs {
		line := fmt.Sprintf("%-19s  %-8s %-6s %6dms  %s",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Tool, r.Status, r.DurationMS, r.InputFile)
		if r.Detail != "" {
			line += "  [" + r.Detail + "]"
		}
		fmt.Println(line)
	}
	return nil
}

func runRunsStats(cmd *cobra.Command, args []string) error {
	store, _, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("Analyse-Historie")
	fmt.Println("================")

	if total, ok := stats["total_runs"].(int64); ok {
		fmt.Printf("Läufe gesamt: %d\n", total)
	}
	if byTool, ok := stats["runs_by_tool"].(map[string]int64); ok && len(byTool) > 0 {
		fmt.Println("Nach Werkzeug:")
		for _, tool := range mapx.SortedKeys(byTool) {
			fmt.Printf("  %-8s %d\n", tool, byTool[tool])
		}
	}
	if byStatus, ok := stats["runs_by_status"].(map[string]int64); ok && len(byStatus) > 0 {
		fmt.Println("Nach Status:")
		for _, status := range mapx.SortedKeys(byStatus) {
			fmt.Printf("  %-8s %d\n", status, byStatus[status])
		}
	}
	if last, ok := stats["last_run"].(time.Time); ok {
		fmt.Printf("Letzter Lauf: %s\n", last.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runRunsPrune(cmd *cobra.Command, args []string) error {
	store, cfg, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	days := runsOlderThan
	if days <= 0 {
		days = cfg.History.RetentionDays
	}

	removed, err := store.Prune(context.Background(), time.Duration(days)*24*time.Hour)
	if err != nil {
		return err
	}

	fmt.Printf("%d Läufe entfernt (älter als %d Tage).\n", removed, days)
	return nil
}

func runRunsVacuum(cmd *cobra.Command, args []string) error {
	store, _, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Vacuum(context.Background()); err != nil {
		return err
	}

	fmt.Println("Datenbank kompaktiert.")
	return nil
}
