package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory RunStore for tests and for runs with
// history persistence disabled.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*RunRecord
}

// NewMemoryStore creates a new in-memory run store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make([]*RunRecord, 0),
	}
}

// Record stores one run record
func (s *MemoryStore) Record(ctx context.Context, run *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}

	stored := *run
	s.runs = append(s.runs, &stored)
	return nil
}

// Query retrieves run records based on filter criteria, newest first
func (s *MemoryStore) Query(ctx context.Context, filter RunFilter) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*RunRecord
	for _, run := range s.runs {
		if filter.Tool != "" && run.Tool != filter.Tool {
			continue
		}
		if filter.Status != "" && run.Status != filter.Status {
			continue
		}
		if !filter.StartTime.IsZero() && run.Timestamp.Before(filter.StartTime) {
			continue
		}
		if !filter.EndTime.IsZero() && run.Timestamp.After(filter.EndTime) {
			continue
		}
		results = append(results, run)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}
	return results, nil
}

// Stats returns run statistics
func (s *MemoryStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	toolCounts := make(map[string]int64)
	statusCounts := make(map[string]int64)
	var lastRun time.Time
	for _, run := range s.runs {
		toolCounts[run.Tool]++
		statusCounts[run.Status]++
		if run.Timestamp.After(lastRun) {
			lastRun = run.Timestamp
		}
	}

	stats := map[string]interface{}{
		"total_runs":     int64(len(s.runs)),
		"runs_by_tool":   toolCounts,
		"runs_by_status": statusCounts,
	}
	if !lastRun.IsZero() {
		stats["last_run"] = lastRun
	}
	return stats, nil
}

// Prune removes runs older than the specified duration
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	kept := s.runs[:0]
	var deleted int64
	for _, run := range s.runs {
		if run.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, run)
	}
	s.runs = kept
	return deleted, nil
}

// Vacuum is a no-op for the in-memory store
func (s *MemoryStore) Vacuum(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
