package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"event-task-suggester/internal/model"
)

func testEvent(title, description, location string, duration time.Duration) model.Event {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return model.Event{
		Title:       title,
		Description: description,
		Location:    location,
		StartTime:   start,
		EndTime:     start.Add(duration),
	}
}

func TestGenerateTaskSuggestions(t *testing.T) {
	e := New()

	t.Run("Meeting Scenario", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Team weekly meeting", "Regular sync", "", time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if set.Analysis.Category != "meeting" {
			t.Errorf("expected meeting, got %s", set.Analysis.Category)
		}
		if set.Analysis.ClassificationConfidence <= 50 {
			t.Errorf("expected confidence above 50, got %.1f", set.Analysis.ClassificationConfidence)
		}

		hasBefore := false
		for _, s := range set.Suggestions {
			if s.Relation == model.RelationBefore {
				hasBefore = true
			}
		}
		if !hasBefore {
			t.Error("expected at least one suggestion before the event")
		}
	})

	t.Run("Exam Scenario Scales Preparation", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Final exam review", "comprehensive final", "", 3*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if set.Analysis.Category != "exam_study" {
			t.Errorf("expected exam_study, got %s", set.Analysis.Category)
		}
		// "final" is a high-priority keyword, so the 7-day base stretches.
		if set.Analysis.PreparationDays <= 7 {
			t.Errorf("expected preparation above the 7-day base, got %d", set.Analysis.PreparationDays)
		}
	})

	t.Run("Social Event Has Follow Up After", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Company holiday party", "", "", 4*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if set.Analysis.Category != "social_event" {
			t.Errorf("expected social_event, got %s", set.Analysis.Category)
		}

		hasAfter := false
		for _, s := range set.Suggestions {
			if s.Relation == model.RelationAfter {
				hasAfter = true
				if s.ScheduledTime.Before(testEvent("", "", "", 4*time.Hour).EndTime) {
					t.Error("after-task scheduled before event end")
				}
			}
		}
		if !hasAfter {
			t.Error("expected a follow-up suggestion after the event")
		}
	})

	t.Run("Zero Duration Accepted", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Project deadline", "final release", "", 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set.Suggestions) == 0 {
			t.Error("expected suggestions for zero-duration event")
		}
		if hasFactorInList(set.Analysis.ComplexityFactors, "duration") {
			t.Errorf("zero duration must not add a duration factor: %v", set.Analysis.ComplexityFactors)
		}
	})

	t.Run("Inverted Time Range Rejected", func(t *testing.T) {
		event := testEvent("Team meeting", "", "", time.Hour)
		event.EndTime = event.StartTime.Add(-time.Hour)

		_, err := e.GenerateTaskSuggestions(event)
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Errorf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("Empty Event Falls Back Without Crashing", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("", "", "", time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if set.Analysis.Category != FallbackCategory {
			t.Errorf("expected %s, got %s", FallbackCategory, set.Analysis.Category)
		}
		if set.Analysis.ClassificationConfidence != 50 {
			t.Errorf("expected confidence 50, got %.1f", set.Analysis.ClassificationConfidence)
		}
	})

	t.Run("Suggestions Sorted By Scheduled Time", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Final exam review", "comprehensive final", "", 3*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(set.Suggestions); i++ {
			if set.Suggestions[i].ScheduledTime.Before(set.Suggestions[i-1].ScheduledTime) {
				t.Errorf("suggestions out of order at %d", i)
			}
		}
	})

	t.Run("Confidence Bounds", func(t *testing.T) {
		events := []model.Event{
			testEvent("Team weekly meeting", "Regular sync", "", time.Hour),
			testEvent("Final exam review", "comprehensive final", "", 3*time.Hour),
			testEvent("Company holiday party", "", "", 4*time.Hour),
			testEvent("", "", "", time.Hour),
			testEvent("Critical board presentation", "keynote for the client", "Conference Center", 9*time.Hour),
		}
		for _, event := range events {
			set, err := e.GenerateTaskSuggestions(event)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range set.Suggestions {
				if s.Confidence < 0 || s.Confidence > 95 {
					t.Errorf("confidence out of bounds: %d (%s)", s.Confidence, s.Description)
				}
			}
			if set.Analysis.ClassificationConfidence < 0 || set.Analysis.ClassificationConfidence > 95 {
				t.Errorf("classification confidence out of bounds: %.1f", set.Analysis.ClassificationConfidence)
			}
		}
	})

	t.Run("Low Weight Templates Suppressed For Simple Events", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Routine checkup appointment", "", "", 30*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if set.Analysis.Category != "appointment" {
			t.Fatalf("expected appointment, got %s", set.Analysis.Category)
		}
		for _, s := range set.Suggestions {
			if s.ComplexityFactor*set.Analysis.ComplexityScore < 0.5 {
				t.Errorf("template below suppression threshold emitted: %q (%.2f)",
					s.Description, s.ComplexityFactor)
			}
		}
	})

	t.Run("Title Substituted Into Description", func(t *testing.T) {
		set, err := e.GenerateTaskSuggestions(testEvent("Team weekly meeting", "Regular sync", "", time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, s := range set.Suggestions {
			if s.Description == "Review agenda and prepare talking points for Team weekly meeting" {
				found = true
			}
		}
		if !found {
			t.Error("expected rendered template with event title")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		event := testEvent("Final exam review", "comprehensive final", "", 3*time.Hour)

		first, err := e.GenerateTaskSuggestions(event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := e.GenerateTaskSuggestions(event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Error("same input produced different output")
		}
	})

	t.Run("Quality Label From Classification Confidence", func(t *testing.T) {
		strong, _ := e.GenerateTaskSuggestions(testEvent("Team weekly meeting", "Regular sync", "", time.Hour))
		if strong.Analysis.Quality != "high" {
			t.Errorf("expected high quality, got %s", strong.Analysis.Quality)
		}

		weak, _ := e.GenerateTaskSuggestions(testEvent("", "", "", time.Hour))
		if weak.Analysis.Quality != "medium" {
			t.Errorf("expected medium quality, got %s", weak.Analysis.Quality)
		}
	})
}

func hasFactorInList(factors []string, substr string) bool {
	for _, f := range factors {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}
