package usecase

import (
	"context"
	"encoding/json"

	"jild/internal/domain/recommendation"
	"jild/internal/domain/wizard"

	"github.com/google/uuid"
)

// WizardState is the questionnaire as the client renders it.
type WizardState struct {
	Step       wizard.Step              `json:"step"`
	StepKey    string                   `json:"step_key"`
	Title      string                   `json:"title"`
	CanAdvance bool                     `json:"can_advance"`
	CanRetreat bool                     `json:"can_retreat"`
	Draft      wizard.Draft             `json:"draft"`
	Results    *recommendation.Rendered `json:"results,omitempty"`
}

// QuestionnaireUsecase drives the five-step wizard of one user.
type QuestionnaireUsecase interface {
	// Load returns the user's wizard, rehydrating it from storage on first use.
	Load(ctx context.Context, userID uuid.UUID) (*WizardState, error)

	// UpdateField merges patch into a draft section without persisting.
	UpdateField(ctx context.Context, userID uuid.UUID, section wizard.Section, patch json.RawMessage) (*WizardState, error)

	// ToggleOption flips one checklist item using that checklist's rule.
	ToggleOption(ctx context.Context, userID uuid.UUID, field wizard.ChecklistField, item string) (*WizardState, error)

	// Advance persists the current step and moves forward.
	Advance(ctx context.Context, userID uuid.UUID) (*WizardState, error)

	// Retreat moves back one step without persisting.
	Retreat(ctx context.Context, userID uuid.UUID) (*WizardState, error)

	// SetPhotoResult replaces the draft's photo result.
	SetPhotoResult(ctx context.Context, userID uuid.UUID, result json.RawMessage) error

	// PhotoResult returns the photo result of the draft, nil when none.
	PhotoResult(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
}
