package engine

import "testing"

func TestClassify(t *testing.T) {
	e := New()

	t.Run("Meeting From Title And Description", func(t *testing.T) {
		result := e.Classify("Team weekly meeting", "Regular sync", "")

		if result.Category != "meeting" {
			t.Errorf("expected meeting, got %s", result.Category)
		}
		if result.Confidence <= 50 {
			t.Errorf("expected confidence above 50, got %.1f", result.Confidence)
		}
	})

	t.Run("Exam From Title Keywords", func(t *testing.T) {
		result := e.Classify("Final exam review", "comprehensive final", "")

		if result.Category != "exam_study" {
			t.Errorf("expected exam_study, got %s", result.Category)
		}
		if result.Confidence <= 50 {
			t.Errorf("expected confidence above 50, got %.1f", result.Confidence)
		}
	})

	t.Run("Social Event", func(t *testing.T) {
		result := e.Classify("Company holiday party", "", "")

		if result.Category != "social_event" {
			t.Errorf("expected social_event, got %s", result.Category)
		}
	})

	t.Run("Title Keyword Outweighs Description", func(t *testing.T) {
		// "trip" in the title dominates even though the description
		// mentions a meeting.
		result := e.Classify("Business trip to Berlin", "kickoff meeting with the client", "")

		if result.Category != "travel" {
			t.Errorf("expected travel, got %s", result.Category)
		}
	})

	t.Run("Low Signal Falls Back To General", func(t *testing.T) {
		result := e.Classify("xyzzy plugh", "", "")

		if result.Category != FallbackCategory {
			t.Errorf("expected %s, got %s", FallbackCategory, result.Category)
		}
		if result.Confidence != 50 {
			t.Errorf("expected confidence exactly 50, got %.1f", result.Confidence)
		}
	})

	t.Run("Empty Input Falls Back To General", func(t *testing.T) {
		result := e.Classify("", "", "")

		if result.Category != FallbackCategory {
			t.Errorf("expected %s, got %s", FallbackCategory, result.Category)
		}
		if result.Confidence != 50 {
			t.Errorf("expected confidence exactly 50, got %.1f", result.Confidence)
		}
	})

	t.Run("Confidence Capped At 95", func(t *testing.T) {
		// A single dominant category takes the whole score pool.
		result := e.Classify("Birthday party", "", "")

		if result.Category != "social_event" {
			t.Fatalf("expected social_event, got %s", result.Category)
		}
		if result.Confidence > 95 {
			t.Errorf("confidence above cap: %.1f", result.Confidence)
		}
	})

	t.Run("Deterministic Tie Break", func(t *testing.T) {
		// Same input twice must classify identically, whatever the scores.
		first := e.Classify("quick brief", "", "")
		second := e.Classify("quick brief", "", "")

		if first.Category != second.Category {
			t.Errorf("tie-break not deterministic: %s vs %s", first.Category, second.Category)
		}
	})

	t.Run("Per Category Scores Exposed", func(t *testing.T) {
		result := e.Classify("Team weekly meeting", "Regular sync", "")

		if len(result.Scores) != len(e.catalog.Categories()) {
			t.Errorf("expected a score per category, got %d", len(result.Scores))
		}
		if result.Scores["meeting"] == 0 {
			t.Error("expected non-zero meeting score")
		}
	})
}

func TestClassifyPatternWeighting(t *testing.T) {
	e := New()

	// "team meeting" hits the second, more specific meeting pattern, which
	// is weighted double the first.
	generic := e.Classify("", "meeting", "")
	specific := e.Classify("", "team meeting", "")

	if specific.Scores["meeting"] <= generic.Scores["meeting"] {
		t.Errorf("specific pattern should score higher: %d vs %d",
			specific.Scores["meeting"], generic.Scores["meeting"])
	}
}
