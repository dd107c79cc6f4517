package repository

import "time"

// CreateTaskOptions carries the fields needed to persist a task.
type CreateTaskOptions struct {
	Description   string
	ScheduledTime time.Time
	EventTitle    string
	Category      string
}
