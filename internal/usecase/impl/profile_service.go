// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	profileRepo       repository.ProfileRepository
	questionnaireRepo repository.QuestionnaireRepository
	now               func() time.Time
	logger            *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	ProfileRepo       repository.ProfileRepository
	QuestionnaireRepo repository.QuestionnaireRepository
	Logger            *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		profileRepo:       params.ProfileRepo,
		questionnaireRepo: params.QuestionnaireRepo,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get loads the profile and the questionnaire summary side by side. A user
// who never saved a profile gets one prefilled from the account email.
func (srv *profileService) Get(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	var (
		user          *entity.User
		profile       *entity.Profile
		questionnaire *entity.Questionnaire
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := srv.userRepo.FindByID(gctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	g.Go(func() error {
		found, err := srv.profileRepo.FindByUserID(gctx, userID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	g.Go(func() error {
		found, err := srv.questionnaireRepo.FindByUserID(gctx, userID, false)
		if err != nil && !errors.Is(err, repository.ErrQuestionnaireNotFound) {
			return errors.Wrap(err, "failed to find questionnaire")
		}
		questionnaire = found

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrProfileLoadFailed, err.Error())
	}

	if profile == nil {
		profile = &entity.Profile{UserID: userID, Email: user.Email}
	}

	view := &usecase.ProfileView{Profile: profile}
	if questionnaire != nil {
		view.Questionnaire = &usecase.QuestionnaireSummary{
			Name:            questionnaire.Name,
			Age:             questionnaire.Age,
			Location:        questionnaire.Location,
			SkinType:        questionnaire.SkinType,
			PrimaryConcerns: questionnaire.PrimaryConcerns,
			Completed:       questionnaire.Completed,
		}
	}

	return view, nil
}

// Save replaces every profile field.
func (srv *profileService) Save(ctx context.Context, userID uuid.UUID, input *usecase.ProfileInput) (*entity.Profile, error) {
	profile := &entity.Profile{
		UserID:    userID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		UpdatedAt: srv.now().UTC(),
	}
	if profile.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email is required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Upsert(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to upsert profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProfileSaveFailed, err.Error())
	}
	srv.log(ctx).Info("Profile saved", slog.Any("userID", userID))

	return profile, nil
}
