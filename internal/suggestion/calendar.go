package suggestion

import (
	"context"
	"fmt"
	"time"

	"event-task-suggester/internal/model"
	"event-task-suggester/pkg/gcalendar"
)

// reminderDuration is the block booked for a task reminder entry.
const reminderDuration = 30 * time.Minute

// CalendarAPI is the slice of the calendar client this domain needs.
type CalendarAPI interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type googleCalendar struct {
	client CalendarAPI
}

// NewGoogleCalendar adapts a Google Calendar client to the CalendarClient
// interface used by the use case.
func NewGoogleCalendar(client CalendarAPI) CalendarClient {
	return &googleCalendar{client: client}
}

func (g *googleCalendar) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]model.Event, error) {
	items, err := g.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, len(items))
	for i, item := range items {
		events[i] = model.Event{
			Title:       item.Summary,
			Description: item.Description,
			Location:    item.Location,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
		}
	}
	return events, nil
}

func (g *googleCalendar) CreateTaskReminder(ctx context.Context, calendarID string, task model.Task) error {
	_, err := g.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     task.Description,
		Description: fmt.Sprintf("Preparation task for %q", task.EventTitle),
		StartTime:   task.ScheduledTime,
		EndTime:     task.ScheduledTime.Add(reminderDuration),
	})
	return err
}
