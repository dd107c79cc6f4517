package feedback

import (
	"context"

	"event-task-suggester/internal/model"
)

//go:generate mockery --name Store
type Store interface {
	// Record updates acceptance counts for one event's suggestion outcome.
	Record(ctx context.Context, category string, accepted, rejected []model.TaskSuggestion) error

	// Snapshot returns a copy of the accumulated counts.
	Snapshot(ctx context.Context) (Snapshot, error)
}
