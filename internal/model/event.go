package model

import "time"

// Event is the event-like record the suggestion engine consumes.
// It is owned by the caller; the engine never persists it.
type Event struct {
	Title       string
	Description string // may be empty
	Location    string // may be empty
	StartTime   time.Time
	EndTime     time.Time
}

// DurationHours returns the event length in hours.
// Negative when the time range is inverted; callers validate before use.
func (e Event) DurationHours() float64 {
	return e.EndTime.Sub(e.StartTime).Hours()
}
