package repository

import (
	"context"

	"jild/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores the profile record.
type ProfileRepository interface {
	// FindByUserID reads the profile of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert writes every profile field, creating the row if needed.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
