package suggestion

import (
	"context"
	"time"

	"event-task-suggester/internal/model"
)

// CalendarClient is the external calendar surface this domain uses: reading
// upcoming events and writing reminders for accepted tasks.
type CalendarClient interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]model.Event, error)
	CreateTaskReminder(ctx context.Context, calendarID string, task model.Task) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate produces task suggestions for a single event.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// Accept creates durable tasks from the selected suggestions and
	// records accepted/rejected feedback.
	Accept(ctx context.Context, input AcceptInput) (AcceptOutput, error)

	// SuggestUpcoming generates suggestions for calendar events in the
	// next N days. Requires a configured calendar client.
	SuggestUpcoming(ctx context.Context, input UpcomingInput) (UpcomingOutput, error)

	// ListTasks returns the tasks created from accepted suggestions.
	ListTasks(ctx context.Context) (ListTasksOutput, error)
}
