package usecase

import (
	"context"

	"jild/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput is a wholesale profile update.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// QuestionnaireSummary is the read-only answer summary on the profile page.
type QuestionnaireSummary struct {
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Location        string   `json:"location"`
	SkinType        string   `json:"skin_type"`
	PrimaryConcerns []string `json:"primary_concerns"`
	Completed       bool     `json:"completed"`
}

// ProfileView is everything the profile page shows.
type ProfileView struct {
	Profile       *entity.Profile       `json:"profile"`
	Questionnaire *QuestionnaireSummary `json:"questionnaire"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	Save(ctx context.Context, userID uuid.UUID, input *ProfileInput) (*entity.Profile, error)
}
