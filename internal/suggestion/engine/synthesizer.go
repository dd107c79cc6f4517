package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"event-task-suggester/internal/model"
)

const (
	// suppressionThreshold drops low-weight templates for simple events:
	// a template is skipped when multiplier * complexity score falls below it.
	suppressionThreshold = 0.5

	// tierMatchBoost slightly rewards templates whose weight matches the
	// event's overall complexity tier.
	tierMatchBoost     = 1.05
	tierMatchHighMin   = 0.8
	tierMatchLowMax    = 0.5
	qualityHighMinConf = 70.0
)

// GenerateTaskSuggestions runs the full pipeline for one event: classify,
// analyze complexity, synthesize tasks from the matched category's templates.
// The returned suggestions are sorted ascending by scheduled time.
func (e *Engine) GenerateTaskSuggestions(event model.Event) (model.SuggestionSet, error) {
	if event.EndTime.Before(event.StartTime) {
		return model.SuggestionSet{}, ErrInvalidTimeRange
	}

	classification := e.Classify(event.Title, event.Description, event.Location)
	complexity := e.AnalyzeComplexity(event.Title, event.Description, event.Location, event.DurationHours())

	category, ok := e.catalog.Lookup(classification.Category)
	if !ok {
		// The fallback category has no template set of its own.
		category, _ = e.catalog.Lookup(DefaultCategory)
	}

	totalPrepDays := int(float64(category.BasePrepDays) * complexity.Score)

	suggestions := make([]model.TaskSuggestion, 0, len(category.Templates))
	for _, tmpl := range category.Templates {
		if tmpl.ComplexityMultiplier*complexity.Score < suppressionThreshold {
			continue
		}

		scheduledTime, relation := scheduleFor(tmpl, event, totalPrepDays)

		confidence := classification.Confidence / 100 * tmpl.ComplexityMultiplier * 100
		if confidence > confidenceCap {
			confidence = confidenceCap
		}
		if tierMatches(complexity.Tier, tmpl.ComplexityMultiplier) {
			confidence *= tierMatchBoost
			if confidence > confidenceCap {
				confidence = confidenceCap
			}
		}

		suggestions = append(suggestions, model.TaskSuggestion{
			Description:      strings.ReplaceAll(tmpl.Text, titlePlaceholder, event.Title),
			ScheduledTime:    scheduledTime,
			Relation:         relation,
			Confidence:       int(confidence),
			Category:         category.Name,
			ComplexityFactor: tmpl.ComplexityMultiplier,
			Notes:            fmt.Sprintf("Based on %s pattern with %s complexity", category.Name, complexity.Tier),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].ScheduledTime.Before(suggestions[j].ScheduledTime)
	})

	quality := "medium"
	if classification.Confidence > qualityHighMinConf {
		quality = "high"
	}

	return model.SuggestionSet{
		Suggestions: suggestions,
		Analysis: model.SuggestionAnalysis{
			Category:                 classification.Category,
			ClassificationConfidence: classification.Confidence,
			ComplexityScore:          complexity.Score,
			ComplexityTier:           complexity.Tier,
			ComplexityFactors:        complexity.Factors,
			PreparationDays:          totalPrepDays,
			SuggestionCount:          len(suggestions),
			Quality:                  quality,
		},
	}, nil
}

// scheduleFor resolves a template's scheduled time. Fixed offsets anchor to
// the event boundaries; distributed templates spread across the preparation
// window in proportion to their weight, so heavier tasks land earlier.
func scheduleFor(tmpl TaskTemplate, event model.Event, totalPrepDays int) (time.Time, model.Relation) {
	switch tmpl.Timing.Kind {
	case TimingFixedAfter:
		return event.EndTime.Add(days(float64(tmpl.Timing.Days))), model.RelationAfter
	case TimingFixedBefore:
		return event.StartTime.Add(-days(float64(tmpl.Timing.Days))), model.RelationBefore
	default:
		offset := float64(totalPrepDays) * tmpl.ComplexityMultiplier
		return event.StartTime.Add(-days(offset)), model.RelationBefore
	}
}

func days(n float64) time.Duration {
	return time.Duration(n * 24 * float64(time.Hour))
}

func tierMatches(tier model.ComplexityTier, multiplier float64) bool {
	return (tier == model.ComplexityHigh && multiplier > tierMatchHighMin) ||
		(tier == model.ComplexityLow && multiplier < tierMatchLowMax)
}
