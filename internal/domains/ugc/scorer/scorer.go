package scorer

import (
	"context"

	"aura-ugc-engine/internal/domains/ugc/model"
)

// Scorer assesses a submission and always produces a verdict. Engine
// failures are absorbed into the heuristic fallback, so intake never
// blocks on scoring infrastructure.
type Scorer interface {
	Score(ctx context.Context, req *model.SubmitRequest) model.AIAssessment
}
