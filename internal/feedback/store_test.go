package feedback

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"event-task-suggester/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}

func TestFeedbackStore(t *testing.T) {
	ctx := context.Background()

	accepted := []model.TaskSuggestion{
		{Description: "Review agenda", Category: "meeting"},
		{Description: "Gather documents", Category: "meeting"},
	}
	rejected := []model.TaskSuggestion{
		{Description: "Test technology setup", Category: "meeting"},
	}

	t.Run("Record Counts", func(t *testing.T) {
		store, err := New("", nopLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.Record(ctx, "meeting", accepted, rejected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Record(ctx, "meeting", accepted[:1], nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats := snap.Categories["meeting"]
		if stats.EventCount != 2 {
			t.Errorf("expected 2 events, got %d", stats.EventCount)
		}
		if stats.AcceptedCount != 3 {
			t.Errorf("expected 3 accepted, got %d", stats.AcceptedCount)
		}
		if stats.RejectedCount != 1 {
			t.Errorf("expected 1 rejected, got %d", stats.RejectedCount)
		}
		if stats.TaskCounts["Review agenda"] != 2 {
			t.Errorf("expected Review agenda count 2, got %d", stats.TaskCounts["Review agenda"])
		}
	})

	t.Run("Snapshot Is A Copy", func(t *testing.T) {
		store, _ := New("", nopLogger{})
		store.Record(ctx, "meeting", accepted, nil)

		snap, _ := store.Snapshot(ctx)
		snap.Categories["meeting"].TaskCounts["Review agenda"] = 99

		fresh, _ := store.Snapshot(ctx)
		if fresh.Categories["meeting"].TaskCounts["Review agenda"] != 1 {
			t.Error("snapshot mutation leaked into store")
		}
	})

	t.Run("Persist And Reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedback.json")

		store, err := New(path, nopLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Record(ctx, "travel", accepted[:1], rejected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reloaded, err := New(path, nopLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := reloaded.Snapshot(ctx)

		stats := snap.Categories["travel"]
		if stats.EventCount != 1 || stats.AcceptedCount != 1 || stats.RejectedCount != 1 {
			t.Errorf("unexpected reloaded stats: %+v", stats)
		}
	})

	t.Run("Record After Loading Null Task Counts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feedback.json")
		raw := []byte(`{"categories":{"meeting":{"event_count":2,"accepted_count":3,"rejected_count":1,"task_counts":null}}}`)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			t.Fatalf("write snapshot: %v", err)
		}

		store, err := New(path, nopLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.Record(ctx, "meeting", accepted[:1], nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap, _ := store.Snapshot(ctx)
		stats := snap.Categories["meeting"]
		if stats.EventCount != 3 || stats.AcceptedCount != 4 {
			t.Errorf("unexpected stats after null task_counts load: %+v", stats)
		}
		if stats.TaskCounts[accepted[0].Description] != 1 {
			t.Errorf("task counts = %v, want %q counted once", stats.TaskCounts, accepted[0].Description)
		}
	})
}
