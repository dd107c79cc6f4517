package model

import "time"

// Relation says whether a suggested task falls before or after the event.
type Relation string

const (
	RelationBefore Relation = "before"
	RelationAfter  Relation = "after"
)

// ComplexityTier buckets the complexity score into low/medium/high.
type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "low"
	ComplexityMedium ComplexityTier = "medium"
	ComplexityHigh   ComplexityTier = "high"
)

// TaskSuggestion is one candidate preparation task for an event.
// Confidence is an integer in [0, 95]; the engine never claims certainty.
type TaskSuggestion struct {
	Description      string
	ScheduledTime    time.Time
	Relation         Relation
	Confidence       int
	Category         string
	ComplexityFactor float64
	Notes            string
}

// SuggestionAnalysis summarizes how a suggestion set was derived.
type SuggestionAnalysis struct {
	Category                 string
	ClassificationConfidence float64 // [0, 95]
	ComplexityScore          float64 // [1.0, 3.0]
	ComplexityTier           ComplexityTier
	ComplexityFactors        []string
	PreparationDays          int
	SuggestionCount          int
	Quality                  string // "high" or "medium"
}

// SuggestionSet is the full result of one engine call:
// suggestions sorted ascending by scheduled time plus the analysis summary.
type SuggestionSet struct {
	Suggestions []TaskSuggestion
	Analysis    SuggestionAnalysis
}
