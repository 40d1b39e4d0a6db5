package usecase

import (
	"context"
	"encoding/json"

	"jild/internal/domain/recommendation"

	"github.com/google/uuid"
)

// Upload is one photo received from the client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// AnalysisOutput is the outcome of an accepted photo.
type AnalysisOutput struct {
	// Preview is a data URL of the photo, built before the upstream call.
	Preview string `json:"preview"`
	// Result is the inference response body, untouched.
	Result   json.RawMessage          `json:"result,omitempty"`
	Rendered *recommendation.Rendered `json:"rendered,omitempty"`
}

// AnalysisUsecase runs photo analysis and renders its results.
type AnalysisUsecase interface {
	// Analyze checks, archives and classifies a photo, then stores the result
	// in the user's questionnaire draft. Preview is set even when the call fails.
	Analyze(ctx context.Context, userID uuid.UUID, upload *Upload) (*AnalysisOutput, error)

	// Results renders the user's current analysis result.
	Results(ctx context.Context, userID uuid.UUID) (*recommendation.Rendered, error)

	// RoutineTab returns one routine tab of the user's bundle.
	RoutineTab(ctx context.Context, userID uuid.UUID, tab recommendation.Tab) ([]recommendation.RoutineStep, error)

	// ResultsQRCode renders the results share link as a PNG.
	ResultsQRCode(ctx context.Context) ([]byte, error)
}
