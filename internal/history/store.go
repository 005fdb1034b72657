// Package history persists one record per analysis run, so earlier
// results stay queryable from the command line.
package history

import (
	"context"
	"time"
)

// Tool names recorded with each run.
const (
	ToolSDC     = "sdc"
	ToolTiming  = "timing"
	ToolNetlist = "netlist"
)

// Run status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RunRecord is one analysis run. The count fields apply to SDC runs and
// stay zero for the other tools; Detail carries a short free-text result
// such as the fastest clock or the worst slack.
type RunRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Tool        string    `json:"tool"`
	InputFile   string    `json:"input_file"`
	Status      string    `json:"status"`
	DurationMS  int64     `json:"duration_ms"`
	Clocks      int       `json:"clocks"`
	IODelays    int       `json:"io_delays"`
	Exceptions  int       `json:"exceptions"`
	RawCommands int       `json:"raw_commands"`
	Diagnostics int       `json:"diagnostics"`
	Detail      string    `json:"detail,omitempty"`
}

// RunFilter defines criteria for querying run records
type RunFilter struct {
	Tool      string
	Status    string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// RunStore defines the interface for run history persistence
type RunStore interface {
	// Record stores one run; a blank ID and zero timestamp are filled in.
	Record(ctx context.Context, run *RunRecord) error
	// Query returns runs matching the filter, newest first.
	Query(ctx context.Context, filter RunFilter) ([]*RunRecord, error)
	// Stats returns aggregate counters over the stored runs.
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Maintenance
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Vacuum(ctx context.Context) error
	Close() error
}
