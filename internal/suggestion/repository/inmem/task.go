// Package inmem is the in-memory Repository implementation. It backs the
// service out of the box; durable stores plug in behind the same interface.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion/repository"
	"event-task-suggester/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	l     log.Logger
}

// New creates an empty in-memory task repository.
func New(l log.Logger) *implRepository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		l:     l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	task := model.Task{
		ID:            uuid.NewString(),
		Description:   opts.Description,
		ScheduledTime: opts.ScheduledTime,
		EventTitle:    opts.EventTitle,
		Category:      opts.Category,
		Completed:     false,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()

	r.l.Debugf(ctx, "created task %s for event %q", task.ID, opts.EventTitle)
	return task, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return task, nil
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	tasks := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	r.mu.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ScheduledTime.Before(tasks[j].ScheduledTime)
	})
	return tasks, nil
}
