package model

// Defaults applied when the widget omits optional submit fields.
const (
	DefaultChannel     = "web"
	DefaultContentType = "review"
)

// AI labels. The scorer buckets its confidence into these three, and
// AILabelError marks items that could not be assessed at all.
const (
	AILabelRealPositive = "looks_real_positive"
	AILabelNeedsReview  = "needs_review"
	AILabelLowQuality   = "likely_spam_or_low_quality"
	AILabelError        = "ai_error"
)

// Score thresholds mapping a [0,1] confidence to a label.
const (
	ThresholdRealPositive = 0.85
	ThresholdNeedsReview  = 0.6
)

// Heuristic fallback tuning used when the AI engine is unreachable.
const (
	HeuristicBase          = 0.5
	HeuristicLongTextBonus = 0.25
	HeuristicLongTextLen   = 40
	HeuristicRatingBonus   = 0.15
	HeuristicRatingFloor   = 4
	HeuristicShortPenalty  = 0.20
	HeuristicShortTextLen  = 15

	// Prefixed onto ai_reasons so fallback verdicts stay distinguishable
	// from genuine model output.
	HeuristicReasonMarker = "heuristic fallback"
)
