package scorer

import (
	"fmt"

	"aura-ugc-engine/internal/domains/ugc/model"
)

// HeuristicScore rates a submission without any model call. Longer text
// and high ratings read as authentic; very short text reads as spam.
// Deterministic: the same input always yields the same verdict.
func HeuristicScore(text string, rating *int) model.AIAssessment {
	score := model.HeuristicBase
	var signals []string

	if len(text) > model.HeuristicLongTextLen {
		score += model.HeuristicLongTextBonus
		signals = append(signals, "substantive text length")
	}
	if rating != nil && *rating >= model.HeuristicRatingFloor {
		score += model.HeuristicRatingBonus
		signals = append(signals, "high rating")
	}
	if len(text) < model.HeuristicShortTextLen {
		score -= model.HeuristicShortPenalty
		signals = append(signals, "very short text")
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	reasons := model.HeuristicReasonMarker
	for _, s := range signals {
		reasons = fmt.Sprintf("%s; %s", reasons, s)
	}

	return model.AIAssessment{
		Score:   score,
		Label:   labelForScore(score),
		Reasons: reasons,
	}
}

func labelForScore(score float64) string {
	switch {
	case score >= model.ThresholdRealPositive:
		return model.AILabelRealPositive
	case score >= model.ThresholdNeedsReview:
		return model.AILabelNeedsReview
	default:
		return model.AILabelLowQuality
	}
}
