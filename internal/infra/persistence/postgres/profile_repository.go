package postgres

import (
	"context"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID reads the profile of a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &entity.Profile{
		UserID:    profileM.UserID,
		FirstName: profileM.FirstName,
		LastName:  profileM.LastName,
		Email:     profileM.Email,
		UpdatedAt: profileM.UpdatedAt,
	}, nil
}

// Upsert writes every profile column; an existing row is overwritten wholesale.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		UserID:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "updated_at"}),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}
