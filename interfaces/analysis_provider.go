package interfaces

import (
	"context"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

type AnalysisProvider interface {
	// Analyze returns an error only for transport or decoding failures.
	// Failures reported by the analysis itself come back in the envelope.
	Analyze(ctx context.Context, request models.AnalysisRequest) (models.AnalysisResponse, error)
}
