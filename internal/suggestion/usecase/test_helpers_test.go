package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type mockTaskRepo struct {
	mu      sync.Mutex
	fail    bool
	created []repository.CreateTaskOptions
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Task{}, fmt.Errorf("store error")
	}
	m.created = append(m.created, opts)
	return model.Task{
		ID:            fmt.Sprintf("task-%d", len(m.created)),
		Description:   opts.Description,
		ScheduledTime: opts.ScheduledTime,
		EventTitle:    opts.EventTitle,
		Category:      opts.Category,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *mockTaskRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, repository.ErrTaskNotFound
}

func (m *mockTaskRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, fmt.Errorf("store error")
	}
	tasks := make([]model.Task, 0, len(m.created))
	for i, o := range m.created {
		tasks = append(tasks, model.Task{ID: fmt.Sprintf("task-%d", i+1), Description: o.Description})
	}
	return tasks, nil
}

type mockFeedback struct {
	mu       sync.Mutex
	err      error
	category string
	accepted int
	rejected int
	calls    int
}

func (m *mockFeedback) Record(ctx context.Context, category string, accepted, rejected []model.TaskSuggestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.category = category
	m.accepted = len(accepted)
	m.rejected = len(rejected)
	return m.err
}

func (m *mockFeedback) Snapshot(ctx context.Context) (feedback.Snapshot, error) {
	return feedback.Snapshot{}, nil
}

type mockCalendar struct {
	events      []model.Event
	err         error
	reminderErr error

	gotCalendarID string
	gotMin        time.Time
	gotMax        time.Time
	reminders     []model.Task
}

func (m *mockCalendar) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]model.Event, error) {
	m.gotCalendarID = calendarID
	m.gotMin = timeMin
	m.gotMax = timeMax
	return m.events, m.err
}

func (m *mockCalendar) CreateTaskReminder(ctx context.Context, calendarID string, task model.Task) error {
	if m.reminderErr != nil {
		return m.reminderErr
	}
	m.reminders = append(m.reminders, task)
	return nil
}
