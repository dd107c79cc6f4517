package usecase

import (
	"context"
	"time"

	"event-task-suggester/internal/suggestion"
)

func (uc *implUseCase) SuggestUpcoming(ctx context.Context, input suggestion.UpcomingInput) (suggestion.UpcomingOutput, error) {
	if uc.calendar == nil {
		return suggestion.UpcomingOutput{}, suggestion.ErrCalendarNotConfigured
	}

	days := input.Days
	if days <= 0 {
		days = defaultUpcomingDays
	}

	now := time.Now()
	events, err := uc.calendar.ListEvents(ctx, uc.calendarID, now, now.AddDate(0, 0, days), maxCalendarResults)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.SuggestUpcoming: list events: %v", err)
		return suggestion.UpcomingOutput{}, err
	}

	out := suggestion.UpcomingOutput{Events: make([]suggestion.EventSuggestions, 0, len(events))}
	for _, ev := range events {
		gen, err := uc.Generate(ctx, suggestion.GenerateInput{Event: ev})
		if err != nil {
			// All-day entries and malformed calendar data should not
			// sink the remaining events.
			uc.l.Warnf(ctx, "suggestion.usecase.SuggestUpcoming: skip %q: %v", ev.Title, err)
			continue
		}

		out.Events = append(out.Events, suggestion.EventSuggestions{
			Event:       ev,
			Suggestions: gen.Suggestions,
			Analysis:    gen.Analysis,
		})
	}

	uc.l.Infof(ctx, "suggestion.usecase.SuggestUpcoming: %d/%d events produced suggestions (window=%dd)",
		len(out.Events), len(events), days)

	return out, nil
}
