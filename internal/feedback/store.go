// Package feedback accumulates per-category acceptance counts for task
// suggestions. The counts are a simple frequency model persisted as a JSON
// snapshot; they carry no guarantee of improving suggestion quality.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"event-task-suggester/internal/model"
	"event-task-suggester/pkg/log"
)

type implStore struct {
	mu       sync.Mutex
	snapshot Snapshot
	path     string // empty disables persistence
	l        log.Logger
}

// New creates a feedback store. When path is non-empty, an existing
// snapshot is loaded from it and every Record rewrites it.
func New(path string, l log.Logger) (*implStore, error) {
	s := &implStore{
		snapshot: Snapshot{Categories: make(map[string]CategoryStats)},
		path:     path,
		l:        l,
	}

	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read feedback snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &s.snapshot); err != nil {
		return nil, fmt.Errorf("parse feedback snapshot: %w", err)
	}
	if s.snapshot.Categories == nil {
		s.snapshot.Categories = make(map[string]CategoryStats)
	}

	return s, nil
}

func (s *implStore) Record(ctx context.Context, category string, accepted, rejected []model.TaskSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.snapshot.Categories[category]
	if !ok {
		stats = CategoryStats{TaskCounts: make(map[string]int)}
	}
	if stats.TaskCounts == nil {
		// Loaded snapshots may carry "task_counts": null.
		stats.TaskCounts = make(map[string]int)
	}

	stats.EventCount++
	stats.AcceptedCount += len(accepted)
	stats.RejectedCount += len(rejected)
	for _, sug := range accepted {
		stats.TaskCounts[sug.Description]++
	}

	s.snapshot.Categories[category] = stats

	if err := s.persistLocked(); err != nil {
		// Feedback is best-effort bookkeeping; never fail the caller.
		s.l.Warnf(ctx, "failed to persist feedback snapshot: %v", err)
	}
	return nil
}

func (s *implStore) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Snapshot{Categories: make(map[string]CategoryStats, len(s.snapshot.Categories))}
	for name, stats := range s.snapshot.Categories {
		counts := make(map[string]int, len(stats.TaskCounts))
		for desc, n := range stats.TaskCounts {
			counts[desc] = n
		}
		stats.TaskCounts = counts
		out.Categories[name] = stats
	}
	return out, nil
}

func (s *implStore) persistLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.snapshot, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
