package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/internal/suggestion/engine"
	"event-task-suggester/internal/suggestion/usecase"
)

func meetingEvent() model.Event {
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	return model.Event{
		Title:       "Team Meeting with Client",
		Description: "Quarterly review meeting to discuss project status",
		Location:    "Conference Room A",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, engine.New(), &mockTaskRepo{}, &mockFeedback{}, nil, "", 0)

		out, err := uc.Generate(ctx, suggestion.GenerateInput{Event: meetingEvent()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Analysis.Category != "meeting" {
			t.Errorf("category = %q, want meeting", out.Analysis.Category)
		}
		if len(out.Suggestions) == 0 {
			t.Fatal("expected suggestions")
		}
		if len(out.Suggestions) != out.Analysis.SuggestionCount {
			t.Errorf("suggestion count mismatch: %d vs %d", len(out.Suggestions), out.Analysis.SuggestionCount)
		}
	})

	t.Run("Invalid Time Range", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, engine.New(), &mockTaskRepo{}, &mockFeedback{}, nil, "", 0)

		ev := meetingEvent()
		ev.EndTime = ev.StartTime.Add(-time.Hour)

		_, err := uc.Generate(ctx, suggestion.GenerateInput{Event: ev})
		if !errors.Is(err, suggestion.ErrInvalidTimeRange) {
			t.Errorf("err = %v, want ErrInvalidTimeRange", err)
		}
	})

	t.Run("Cache Distinguishes Field Boundaries", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, engine.New(), &mockTaskRepo{}, &mockFeedback{}, nil, "", 4)

		start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
		base := model.Event{Title: "Sync", StartTime: start, EndTime: start.Add(time.Hour)}

		// Same concatenated text, different description/location split: the
		// second event carries a location signal the first does not.
		evA := base
		evA.Description = "a|international"
		evB := base
		evB.Description = "a"
		evB.Location = "international|"

		first, err := uc.Generate(ctx, suggestion.GenerateInput{Event: evA})
		if err != nil {
			t.Fatalf("first event: %v", err)
		}
		second, err := uc.Generate(ctx, suggestion.GenerateInput{Event: evB})
		if err != nil {
			t.Fatalf("second event: %v", err)
		}

		if second.Analysis.ComplexityScore == first.Analysis.ComplexityScore {
			t.Errorf("complexity score %v served for both events, want location factor applied to the second",
				second.Analysis.ComplexityScore)
		}
	})

	t.Run("Repeated Calls Are Stable", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, engine.New(), &mockTaskRepo{}, &mockFeedback{}, nil, "", 4)

		first, err := uc.Generate(ctx, suggestion.GenerateInput{Event: meetingEvent()})
		if err != nil {
			t.Fatalf("first call: %v", err)
		}
		second, err := uc.Generate(ctx, suggestion.GenerateInput{Event: meetingEvent()})
		if err != nil {
			t.Fatalf("second call: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical output for identical events")
		}
	})
}
