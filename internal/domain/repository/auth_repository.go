package repository

import (
	"context"

	"jild/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrPasswordResetNotFound is returned when a reset grant does not exist.
	ErrPasswordResetNotFound = errors.New("password reset not found")
)

// AuthRepository persists credentials and password reset grants.
type AuthRepository interface {
	// CreateAuthentication persists a new email/password credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the hash of a user's credential for provider.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, provider string, hash string) error

	// CreatePasswordReset stores a new reset grant.
	CreatePasswordReset(ctx context.Context, reset *entity.PasswordReset) error

	// FindPasswordResetByHash retrieves a reset grant by its token hash.
	FindPasswordResetByHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error)

	// MarkPasswordResetUsed consumes a reset grant.
	MarkPasswordResetUsed(ctx context.Context, id uuid.UUID) error
}
