package model

import "time"

// Task is a durable task record created from an accepted suggestion.
type Task struct {
	ID            string
	Description   string
	ScheduledTime time.Time
	EventTitle    string
	Category      string
	Completed     bool
	CreatedAt     time.Time
}
