// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/domain/service"
	"jild/internal/usecase"
	"jild/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetTokenBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	publisher         service.EventPublisher
	broadcaster       service.SessionBroadcaster
	maxActiveSessions int
	passwordMinLength int
	resetTokenTTL     time.Duration
	resetRedirectURL  string
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Publisher        service.EventPublisher
	Broadcaster      service.SessionBroadcaster
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		publisher:         params.Publisher,
		broadcaster:       params.Broadcaster,
		passwordMinLength: 6,
		resetTokenTTL:     time.Hour,
		now:               time.Now,
		logger:            params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		auth := params.Config.Auth
		srv.maxActiveSessions = auth.MaxActiveSessions
		if auth.PasswordMinLength > 0 {
			srv.passwordMinLength = auth.PasswordMinLength
		}
		if auth.ResetTokenTTL > 0 {
			srv.resetTokenTTL = auth.ResetTokenTTL
		}
		srv.resetRedirectURL = auth.ResetRedirectURL
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkNewPassword applies the sign-up and reset password rules.
func (srv *authService) checkNewPassword(password, confirm string) error {
	if password != confirm {
		return domainerrors.ErrPasswordMismatch
	}
	if len(password) < srv.passwordMinLength {
		return domainerrors.ErrPasswordTooShort.WithMessage(fmt.Sprintf("Password must be at least %d characters", srv.passwordMinLength))
	}

	return nil
}

// SignUp creates the user, its email credential and an empty profile in one transaction.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" ||
		email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.checkNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}
	if !input.AgreeTerms {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", email))

	// Hash outside the transaction, bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newUser := &entity.User{Email: email}
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign-up")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       constants.AuthProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := repoFactory.NewAuthRepository().CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during sign-up")
		}

		profile := &entity.Profile{
			UserID:    newUser.ID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Email:     email,
		}
		if err := repoFactory.NewProfileRepository().Upsert(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile during sign-up")
		}

		created = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", created.ID))

	return created, nil
}

// SignIn checks the email credential and opens a new session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.Session, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, constants.AuthProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signed-in user")
	}

	session, err := srv.openSession(ctx, user, nil)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.publishSession(user, service.SessionEventSignedIn, session)
	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return session, nil
}

// openSession issues tokens and stores the refresh token, revoking the
// oldest sessions beyond the cap and, when rotating, the replaced token.
func (srv *authService) openSession(ctx context.Context, user *entity.User, replaces *entity.RefreshToken) (*usecase.Session, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if replaces != nil {
			if err := refreshRepo.DeleteRefreshToken(ctx, replaces.ID); err != nil {
				return errors.Wrap(err, "failed to revoke rotated refresh token")
			}
		}

		if srv.maxActiveSessions > 0 {
			if err := srv.enforceSessionLimit(ctx, refreshRepo, user.ID); err != nil {
				return err
			}
		}

		return errors.Wrap(refreshRepo.CreateRefreshToken(ctx, record), "failed to store refresh token")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute session transaction")
	}

	return &usecase.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}

// enforceSessionLimit leaves room for one more session by revoking the oldest ones.
func (srv *authService) enforceSessionLimit(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID) error {
	active, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	excess := len(active) - srv.maxActiveSessions + 1
	for i := 0; i < excess; i++ {
		if err := refreshRepo.DeleteRefreshToken(ctx, active[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to revoke oldest session")
		}
		srv.log(ctx).Info("Revoked oldest session over limit", slog.Any("userID", userID), slog.Any("tokenID", active[i].ID))
	}

	return nil
}

// SignOut ends the session of refreshToken. Unknown tokens are not an error.
func (srv *authService) SignOut(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	if claims != nil {
		srv.broadcaster.Publish(service.SessionChange{
			UserID: claims.UserID,
			Event:  service.SessionEventSignedOut,
		})
	}
	srv.log(ctx).Info("Signed out")

	return nil
}

// RefreshSession rotates the refresh token and issues a new access token.
func (srv *authService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.Session, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	session, err := srv.openSession(ctx, user, stored)
	if err != nil {
		srv.log(ctx).Error("Failed to rotate session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	srv.publishSession(user, service.SessionEventRefreshed, session)

	return session, nil
}

// ForgotPassword issues a reset link. Unknown emails succeed silently.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Please enter your email address")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := util.RandomToken(resetTokenBytes)
	if err != nil {
		return err
	}

	now := srv.now()
	reset := &entity.PasswordReset{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(token),
		ExpiresAt: now.Add(srv.resetTokenTTL),
	}
	if err := srv.authRepo.CreatePasswordReset(ctx, reset); err != nil {
		return errors.Wrap(err, "failed to store password reset")
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventPasswordResetRequested,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     user.ID.String(),
		OccurredAt: now.UTC(),
		Data: map[string]string{
			"email":      user.Email,
			"reset_url":  srv.resetRedirectURL + "?token=" + token,
			"expires_at": reset.ExpiresAt.UTC().Format(time.RFC3339),
		},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish password reset event")
	}

	srv.log(ctx).Info("Password reset issued", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword redeems a reset token, replaces the password and ends every session.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Token == "" {
		return domainerrors.ErrResetTokenInvalid
	}
	if input.Password == "" || input.ConfirmPassword == "" {
		return domainerrors.ErrValidationFailed
	}
	if err := srv.checkNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		reset, err := authRepo.FindPasswordResetByHash(ctx, srv.tokenService.HashToken(input.Token))
		if err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find password reset")
		}
		if !reset.Usable(srv.now()) {
			return domainerrors.ErrResetTokenInvalid
		}

		if err := authRepo.MarkPasswordResetUsed(ctx, reset.ID); err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to consume password reset")
		}
		if err := authRepo.UpdatePasswordHash(ctx, reset.UserID, constants.AuthProviderEmail, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, reset.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}
		userID = reset.UserID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.broadcaster.Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedOut})
	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

func (srv *authService) publishSession(user *entity.User, event string, session *usecase.Session) {
	srv.broadcaster.Publish(service.SessionChange{
		UserID: user.ID,
		Event:  event,
		Session: &service.SessionIdentity{
			UserID:    user.ID,
			Email:     user.Email,
			ExpiresAt: session.ExpiresAt,
		},
	})
}
