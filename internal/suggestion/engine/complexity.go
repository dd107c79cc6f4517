package engine

import (
	"fmt"
	"strings"

	"event-task-suggester/internal/model"
)

// Complexity factors. Multiplicative, applied to a base of 1.0 and capped.
const (
	veryLongDurationHours  = 8.0
	longDurationHours      = 4.0
	veryLongDurationFactor = 2.0
	longDurationFactor     = 1.5

	complexLocationFactor = 1.3

	// highPriorityFactor stacks once per matched keyword.
	highPriorityFactor = 1.2

	// stakeholderStep: n distinct stakeholder keywords multiply by (1 + n*step).
	stakeholderStep = 0.1

	complexityCap = 3.0

	tierHighMin   = 2.0
	tierMediumMin = 1.3
)

var (
	complexLocationWords = []string{"international", "airport", "conference center"}
	highPriorityWords    = []string{"critical", "important", "major", "final", "board", "client", "public"}
	stakeholderWords     = []string{"team", "client", "board", "committee", "group", "department"}
)

// ComplexityResult is the ephemeral outcome of complexity analysis.
type ComplexityResult struct {
	Score   float64 // [1.0, 3.0]
	Factors []string
	Tier    model.ComplexityTier
}

// AnalyzeComplexity derives a complexity multiplier from event duration,
// location, and keyword signals. Zero or negative duration simply earns no
// duration factor.
func (e *Engine) AnalyzeComplexity(title, description, location string, durationHours float64) ComplexityResult {
	text := strings.ToLower(title + " " + description + " " + location)
	locationLower := strings.ToLower(location)

	score := 1.0
	var factors []string

	// The longer threshold is checked first so very long events get the
	// bigger factor; the two branches are mutually exclusive.
	if durationHours > veryLongDurationHours {
		score *= veryLongDurationFactor
		factors = append(factors, "very long duration")
	} else if durationHours > longDurationHours {
		score *= longDurationFactor
		factors = append(factors, "long duration")
	}

	for _, word := range complexLocationWords {
		if strings.Contains(locationLower, word) {
			score *= complexLocationFactor
			factors = append(factors, "complex location")
			break
		}
	}

	for _, word := range highPriorityWords {
		if strings.Contains(text, word) {
			score *= highPriorityFactor
			factors = append(factors, fmt.Sprintf("high-priority keyword: %s", word))
		}
	}

	stakeholders := 0
	for _, word := range stakeholderWords {
		if strings.Contains(text, word) {
			stakeholders++
		}
	}
	if stakeholders > 0 {
		score *= 1 + stakeholderStep*float64(stakeholders)
		factors = append(factors, fmt.Sprintf("multiple stakeholders (%d)", stakeholders))
	}

	if score > complexityCap {
		score = complexityCap
	}

	return ComplexityResult{
		Score:   score,
		Factors: factors,
		Tier:    complexityTier(score),
	}
}

func complexityTier(score float64) model.ComplexityTier {
	switch {
	case score >= tierHighMin:
		return model.ComplexityHigh
	case score >= tierMediumMin:
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}
