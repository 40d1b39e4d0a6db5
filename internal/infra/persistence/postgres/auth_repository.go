package postgres

import (
	"context"
	"time"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new authentication method record.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required authentication information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves an authentication record by its provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}

// UpdatePasswordHash replaces the stored hash of a user's credential.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, provider string, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ? AND provider = ?", userID, provider).
		Update("password_hash", hash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// CreatePasswordReset stores a new reset grant.
func (repo *authRepository) CreatePasswordReset(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

// FindPasswordResetByHash retrieves a reset grant by its token hash.
func (repo *authRepository) FindPasswordResetByHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPasswordResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset")
	}

	return toPasswordResetDomain(&resetM), nil
}

// MarkPasswordResetUsed consumes a grant. A grant that was already used counts as not found.
func (repo *authRepository) MarkPasswordResetUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark password reset used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPasswordResetNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
	}
}

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	return &model.PasswordResetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
	}
}
