package engine

import "strings"

// Scoring weights. Keeping these named makes the scoring policy auditable
// independently of the catalog content.
const (
	// patternIndexWeight scales pattern scores by position: a match on
	// pattern i earns (i+1)*patternIndexWeight per occurrence, so later,
	// more specific patterns count more.
	patternIndexWeight = 10

	// titleKeywordBonus is the flat score for a category keyword found in
	// the title alone. Titles are deliberately trusted over descriptions.
	titleKeywordBonus = 50

	// Tier bonuses for complexity keywords found anywhere in the text.
	highTierBonus   = 5
	mediumTierBonus = 3
	lowTierBonus    = 1

	// confidenceCap is the hard ceiling: the engine never claims full certainty.
	confidenceCap = 95.0

	// fallbackThreshold is the confidence below which the classified
	// category is replaced with the generic fallback.
	fallbackThreshold = 30.0

	// fallbackConfidence is reported on the fallback path.
	fallbackConfidence = 50.0
)

// ClassificationResult is the ephemeral outcome of classifying one event.
type ClassificationResult struct {
	Category   string
	Confidence float64 // [0, 95]
	Scores     map[string]int
}

// Classify scores every catalog category against the event text and picks
// the winner. Ties go to the category earliest in catalog order.
func (e *Engine) Classify(title, description, location string) ClassificationResult {
	text := strings.ToLower(title + " " + description + " " + location)
	titleLower := strings.ToLower(title)

	scores := make(map[string]int, len(e.catalog.Categories()))

	bestCategory := ""
	bestScore := 0
	totalScore := 0

	for _, cat := range e.catalog.Categories() {
		score := 0

		for i, pattern := range cat.Patterns {
			matches := pattern.FindAllStringIndex(text, -1)
			score += len(matches) * (i + 1) * patternIndexWeight
		}

		for _, keyword := range cat.TitleKeywords {
			if strings.Contains(titleLower, keyword) {
				score += titleKeywordBonus
			}
		}

		score += tierBonus(text, cat.Complexity.High, highTierBonus)
		score += tierBonus(text, cat.Complexity.Medium, mediumTierBonus)
		score += tierBonus(text, cat.Complexity.Low, lowTierBonus)

		scores[cat.Name] = score
		totalScore += score

		// Strict > keeps the first category on equal scores; catalog order
		// is the documented tie-break.
		if bestCategory == "" || score > bestScore {
			bestCategory = cat.Name
			bestScore = score
		}
	}

	if totalScore == 0 {
		// No signal at all: report the generic fallback rather than
		// whichever category happens to come first.
		return ClassificationResult{
			Category:   FallbackCategory,
			Confidence: fallbackConfidence,
			Scores:     scores,
		}
	}

	confidence := float64(bestScore) / float64(totalScore) * 100
	if confidence > confidenceCap {
		confidence = confidenceCap
	}
	if confidence < fallbackThreshold {
		bestCategory = FallbackCategory
		confidence = fallbackConfidence
	}

	return ClassificationResult{
		Category:   bestCategory,
		Confidence: confidence,
		Scores:     scores,
	}
}

func tierBonus(text string, keywords []string, bonus int) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score += bonus
		}
	}
	return score
}
