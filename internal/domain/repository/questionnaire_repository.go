package repository

import (
	"context"

	"jild/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for questionnaire persistence.
var (
	// ErrQuestionnaireNotFound is returned when a user has never saved a step.
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	// ErrSkinAnalysisNotFound is returned when a user has no analysis yet.
	ErrSkinAnalysisNotFound = errors.New("skin analysis not found")
)

// QuestionnaireRepository mirrors wizard answers, one row per user.
type QuestionnaireRepository interface {
	// FindByUserID reads the stored answers. When fresh is set the read goes to the primary.
	FindByUserID(ctx context.Context, userID uuid.UUID, fresh bool) (*entity.Questionnaire, error)

	// UpsertFields merges the given snake_case columns into the user's row,
	// creating it if needed and bumping updated_at.
	UpsertFields(ctx context.Context, userID uuid.UUID, fields map[string]any) error
}

// SkinAnalysisRepository stores completed analyses, newest wins on read.
type SkinAnalysisRepository interface {
	// Create appends an analysis record.
	Create(ctx context.Context, analysis *entity.SkinAnalysis) error

	// FindLatestByUserID returns the most recent analysis of a user.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.SkinAnalysis, error)
}
