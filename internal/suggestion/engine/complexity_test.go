package engine

import (
	"testing"

	"event-task-suggester/internal/model"
)

func TestAnalyzeComplexity(t *testing.T) {
	e := New()

	t.Run("Baseline Is One", func(t *testing.T) {
		result := e.AnalyzeComplexity("Coffee chat", "", "", 1)

		if result.Score != 1.0 {
			t.Errorf("expected 1.0, got %.2f", result.Score)
		}
		if result.Tier != model.ComplexityLow {
			t.Errorf("expected low tier, got %s", result.Tier)
		}
		if len(result.Factors) != 0 {
			t.Errorf("expected no factors, got %v", result.Factors)
		}
	})

	t.Run("Long Duration", func(t *testing.T) {
		result := e.AnalyzeComplexity("Offsite", "", "", 5)

		if result.Score != 1.5 {
			t.Errorf("expected 1.5, got %.2f", result.Score)
		}
		if !hasFactor(result, "long duration") {
			t.Errorf("expected long duration factor, got %v", result.Factors)
		}
	})

	// The very-long threshold is checked first so that events over 8 hours
	// get the 2.0 factor instead of being swallowed by the 4-hour rule.
	t.Run("Very Long Duration Checked First", func(t *testing.T) {
		result := e.AnalyzeComplexity("Offsite", "", "", 9)

		if result.Score != 2.0 {
			t.Errorf("expected 2.0, got %.2f", result.Score)
		}
		if !hasFactor(result, "very long duration") {
			t.Errorf("expected very long duration factor, got %v", result.Factors)
		}
		if hasFactor(result, "long duration") {
			t.Errorf("duration factors must be mutually exclusive: %v", result.Factors)
		}
	})

	t.Run("Exactly Four Hours Earns No Duration Factor", func(t *testing.T) {
		result := e.AnalyzeComplexity("Offsite", "", "", 4)

		if result.Score != 1.0 {
			t.Errorf("expected 1.0, got %.2f", result.Score)
		}
	})

	t.Run("Zero Duration Earns No Duration Factor", func(t *testing.T) {
		result := e.AnalyzeComplexity("Reminder", "", "", 0)

		if result.Score != 1.0 {
			t.Errorf("expected 1.0, got %.2f", result.Score)
		}
	})

	t.Run("Complex Location", func(t *testing.T) {
		result := e.AnalyzeComplexity("Flight", "", "International Airport Terminal 2", 1)

		if result.Score != 1.3 {
			t.Errorf("expected 1.3, got %.2f", result.Score)
		}
		if !hasFactor(result, "complex location") {
			t.Errorf("expected complex location factor, got %v", result.Factors)
		}
	})

	t.Run("High Priority Keywords Stack", func(t *testing.T) {
		result := e.AnalyzeComplexity("Critical final review", "", "", 1)

		// critical and final: 1.2 * 1.2
		want := 1.2 * 1.2
		if !closeTo(result.Score, want) {
			t.Errorf("expected %.3f, got %.3f", want, result.Score)
		}
	})

	t.Run("Stakeholder Count", func(t *testing.T) {
		result := e.AnalyzeComplexity("Sync", "with the team and the committee", "", 1)

		// two distinct stakeholder words: 1 + 0.1*2
		if !closeTo(result.Score, 1.2) {
			t.Errorf("expected 1.2, got %.3f", result.Score)
		}
		if !hasFactor(result, "multiple stakeholders (2)") {
			t.Errorf("expected stakeholder factor, got %v", result.Factors)
		}
	})

	t.Run("Score Capped At Three", func(t *testing.T) {
		result := e.AnalyzeComplexity(
			"Critical important major final board client public launch",
			"team client board committee group department",
			"International Airport", 10)

		if result.Score != 3.0 {
			t.Errorf("expected cap at 3.0, got %.2f", result.Score)
		}
		if result.Tier != model.ComplexityHigh {
			t.Errorf("expected high tier, got %s", result.Tier)
		}
	})

	t.Run("Tier Boundaries", func(t *testing.T) {
		cases := []struct {
			score float64
			want  model.ComplexityTier
		}{
			{1.0, model.ComplexityLow},
			{1.29, model.ComplexityLow},
			{1.3, model.ComplexityMedium},
			{1.99, model.ComplexityMedium},
			{2.0, model.ComplexityHigh},
			{3.0, model.ComplexityHigh},
		}
		for _, tc := range cases {
			if got := complexityTier(tc.score); got != tc.want {
				t.Errorf("tier(%.2f): expected %s, got %s", tc.score, tc.want, got)
			}
		}
	})
}

func hasFactor(result ComplexityResult, factor string) bool {
	for _, f := range result.Factors {
		if f == factor {
			return true
		}
	}
	return false
}

func closeTo(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}
