package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mcwerror "github.com/msto63/mCW/foundation/core/error"
	"github.com/msto63/mCW/foundation/utils/filex"
)

// SQLiteStore implements RunStore using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/runs.db",
	}
}

// NewSQLiteStore opens (and if necessary creates) the run database in WAL
// mode.
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := filex.EnsureDir(dir); err != nil {
		return nil, mcwerror.Wrap(err, "creating data directory failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.open")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, mcwerror.Wrapf(err, "opening run database %s failed", cfg.Path).
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.open")
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, mcwerror.Wrap(err, "initializing run database schema failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.open")
	}
	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		tool TEXT NOT NULL,
		input_file TEXT NOT NULL,
		status TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		clocks INTEGER NOT NULL DEFAULT 0,
		io_delays INTEGER NOT NULL DEFAULT 0,
		exceptions INTEGER NOT NULL DEFAULT 0,
		raw_commands INTEGER NOT NULL DEFAULT 0,
		diagnostics INTEGER NOT NULL DEFAULT 0,
		detail TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_tool ON runs(tool);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_tool_status ON runs(tool, status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores one run record
func (s *SQLiteStore) Record(ctx context.Context, run *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, timestamp, tool, input_file, status, duration_ms,
			clocks, io_delays, exceptions, raw_commands, diagnostics, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Timestamp, run.Tool, run.InputFile, run.Status, run.DurationMS,
		run.Clocks, run.IODelays, run.Exceptions, run.RawCommands, run.Diagnostics, run.Detail)

	if err != nil {
		return mcwerror.Wrap(err, "inserting run record failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.record")
	}
	return nil
}

// Query retrieves run records based on filter criteria, newest first
func (s *SQLiteStore) Query(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, tool, input_file, status, duration_ms,
		clocks, io_delays, exceptions, raw_commands, diagnostics, detail
		FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Tool != "" {
		query += " AND tool = ?"
		args = append(args, filter.Tool)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.StartTime.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query += " AND timestamp <= ?"
		args = append(args, filter.EndTime)
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// OFFSET needs a LIMIT clause; -1 means unlimited.
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mcwerror.Wrap(err, "querying run records failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.query")
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		var run RunRecord
		var detail sql.NullString

		if err := rows.Scan(&run.ID, &run.Timestamp, &run.Tool, &run.InputFile,
			&run.Status, &run.DurationMS, &run.Clocks, &run.IODelays,
			&run.Exceptions, &run.RawCommands, &run.Diagnostics, &detail); err != nil {
			return nil, mcwerror.Wrap(err, "scanning run record failed").
				WithCode(mcwerror.CodeDatabaseError).
				WithOperation("history.query")
		}
		if detail.Valid {
			run.Detail = detail.String
		}
		runs = append(runs, &run)
	}
	return runs, nil
}

// Stats returns run statistics
func (s *SQLiteStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total); err != nil {
		return nil, statsError(err)
	}
	stats["total_runs"] = total

	toolCounts, err := s.countBy(ctx, "tool")
	if err != nil {
		return nil, err
	}
	stats["runs_by_tool"] = toolCounts

	statusCounts, err := s.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}
	stats["runs_by_status"] = statusCounts

	// MAX(timestamp) would drop the column's DATETIME decltype and come
	// back as raw text, so select the newest row instead.
	var lastRun time.Time
	err = s.db.QueryRowContext(ctx,
		`SELECT timestamp FROM runs ORDER BY timestamp DESC LIMIT 1`).Scan(&lastRun)
	switch {
	case err == sql.ErrNoRows:
		// empty store, no last_run
	case err != nil:
		return nil, statsError(err)
	default:
		stats["last_run"] = lastRun
	}

	return stats, nil
}

// countBy groups the runs table by one column. The column name comes from
// a fixed caller-side set, never from user input.
func (s *SQLiteStore) countBy(ctx context.Context, column string) (map[string]int64, error) {
	counts := make(map[string]int64)
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) FROM runs GROUP BY %s`, column, column))
	if err != nil {
		return nil, statsError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, statsError(err)
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, statsError(err)
	}
	return counts, nil
}

func statsError(err error) error {
	return mcwerror.Wrap(err, "reading run statistics failed").
		WithCode(mcwerror.CodeDatabaseError).
		WithOperation("history.stats")
}

// Prune removes runs older than the specified duration
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, mcwerror.Wrap(err, "pruning run records failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.prune")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Vacuum optimizes the database
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `VACUUM`)
	if err != nil {
		return mcwerror.Wrap(err, "vacuum failed").
			WithCode(mcwerror.CodeDatabaseError).
			WithOperation("history.vacuum")
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
