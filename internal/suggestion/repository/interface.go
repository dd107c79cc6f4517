package repository

import (
	"context"

	"event-task-suggester/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateTask persists one task created from an accepted suggestion.
	CreateTask(ctx context.Context, opts CreateTaskOptions) (model.Task, error)

	// GetTask fetches a task by ID.
	GetTask(ctx context.Context, id string) (model.Task, error)

	// ListTasks returns all tasks ordered by scheduled time.
	ListTasks(ctx context.Context) ([]model.Task, error)
}
