package impl

import (
	"context"
	"testing"
	"time"

	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/domain/service"
	mockRepo "jild/internal/mocks/repository"
	mockService "jild/internal/mocks/service"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	profileRepo      *mockRepo.MockProfileRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	publisher        *mockService.MockEventPublisher
	broadcaster      *mockService.MockSessionBroadcaster
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	f := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		hasher:           mockService.NewMockPasswordHasher(t),
		tokenService:     mockService.NewMockTokenService(t),
		publisher:        mockService.NewMockEventPublisher(t),
		broadcaster:      mockService.NewMockSessionBroadcaster(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		AuthRepo:         f.authRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Publisher:        f.publisher,
		Broadcaster:      f.broadcaster,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return f
}

// runTx makes the transaction manager run fn against the fixture's repositories.
func (f authServiceFixtures) runTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	f.factory.EXPECT().NewAuthRepository().Return(f.authRepo).Maybe()
	f.factory.EXPECT().NewRefreshTokenRepository().Return(f.refreshTokenRepo).Maybe()
	f.factory.EXPECT().NewProfileRepository().Return(f.profileRepo).Maybe()
}

func (f authServiceFixtures) expectTokens(userID uuid.UUID, email string) {
	f.tokenService.EXPECT().GenerateTokens(userID, email).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
}

func validSignUp() *usecase.SignUpInput {
	return &usecase.SignUpInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           " Jane@Example.com ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AgreeTerms:      true,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.runTx()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Email == "jane@example.com" })).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = userID

			return nil
		})
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == userID && a.Provider == constants.AuthProviderEmail && a.PasswordHash == "hashed"
		})).
		Return(nil)
	fx.profileRepo.EXPECT().
		Upsert(ctx, &entity.Profile{UserID: userID, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}).
		Return(nil)

	user, err := fx.service.SignUp(ctx, validSignUp())
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(in *usecase.SignUpInput)
		expectedErr error
	}{
		{
			name:        "missing first name",
			mutate:      func(in *usecase.SignUpInput) { in.FirstName = " " },
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "password mismatch",
			mutate:      func(in *usecase.SignUpInput) { in.ConfirmPassword = "secret2" },
			expectedErr: domainerrors.ErrPasswordMismatch,
		},
		{
			name: "password too short",
			mutate: func(in *usecase.SignUpInput) {
				in.Password = "abc"
				in.ConfirmPassword = "abc"
			},
			expectedErr: domainerrors.ErrPasswordTooShort,
		},
		{
			name:        "terms not accepted",
			mutate:      func(in *usecase.SignUpInput) { in.AgreeTerms = false },
			expectedErr: domainerrors.ErrTermsNotAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 5)
			input := validSignUp()
			tt.mutate(input)

			_, err := fx.service.SignUp(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.runTx()
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.SignUp(ctx, validSignUp())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, constants.AuthProviderEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user.ID, user.Email)
	fx.runTx()
	fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).Return(nil, nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == user.ID && rt.TokenHash == "refresh-hash"
		})).
		Return(nil)
	fx.broadcaster.EXPECT().
		Publish(mock.MatchedBy(func(c service.SessionChange) bool {
			return c.UserID == user.ID && c.Event == service.SessionEventSignedIn && c.Session != nil
		})).
		Return()

	session, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "JANE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
	assert.Equal(t, user, session.User)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, repository.ErrAuthNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, mock.Anything, mock.Anything).
					Return(&entity.Authentication{PasswordHash: "hashed"}, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 5)
			tt.setup(fx)

			_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "jane@example.com", Password: "wrong"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestAuthService_SignIn_EnforcesSessionLimit(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	newer := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.authRepo.EXPECT().FindAuthentication(ctx, mock.Anything, mock.Anything).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(mock.Anything, mock.Anything).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user.ID, user.Email)
	fx.runTx()
	fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).Return([]*entity.RefreshToken{oldest, newer}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil).Once()
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)
	fx.broadcaster.EXPECT().Publish(mock.Anything).Return()

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	fx.refreshTokenRepo.AssertNotCalled(t, "DeleteRefreshToken", ctx, newer.ID)
}

func TestAuthService_SignOut(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)
	fx.broadcaster.EXPECT().
		Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedOut}).
		Return()

	require.NoError(t, fx.service.SignOut(ctx, "refresh-token"))
}

func TestAuthService_SignOut_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))
	fx.tokenService.EXPECT().HashToken("garbage").Return("garbage-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "garbage-hash").Return(nil)

	require.NoError(t, fx.service.SignOut(ctx, "garbage"))
	fx.broadcaster.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestAuthService_RefreshSession_Rotates(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "old-hash"}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-token").Return(&service.Claims{UserID: user.ID}, nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user.ID, user.Email)
	fx.runTx()
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)
	fx.broadcaster.EXPECT().
		Publish(mock.MatchedBy(func(c service.SessionChange) bool { return c.Event == service.SessionEventRefreshed })).
		Return()

	session, err := fx.service.RefreshSession(ctx, "old-token")
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestAuthService_RefreshSession_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "invalid signature",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateRefreshToken("token").Return(nil, errors.New("signature is invalid"))
			},
		},
		{
			name: "revoked",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateRefreshToken("token").Return(&service.Claims{UserID: uuid.New()}, nil)
				fx.tokenService.EXPECT().HashToken("token").Return("hash")
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(nil, repository.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "owner mismatch",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateRefreshToken("token").Return(&service.Claims{UserID: uuid.New()}, nil)
				fx.tokenService.EXPECT().HashToken("token").Return("hash")
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").
					Return(&entity.RefreshToken{UserID: uuid.New()}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 5)
			tt.setup(fx)

			_, err := fx.service.RefreshSession(context.Background(), "token")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
		})
	}
}

func TestAuthService_ForgotPassword_UnknownEmailSucceeds(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	require.NoError(t, fx.service.ForgotPassword(ctx, "Ghost@example.com"))
}

func TestAuthService_ForgotPassword_IssuesLink(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	fx.tokenService.EXPECT().HashToken(mock.AnythingOfType("string")).Return("reset-hash")
	fx.authRepo.EXPECT().
		CreatePasswordReset(ctx, mock.MatchedBy(func(r *entity.PasswordReset) bool {
			return r.UserID == user.ID && r.TokenHash == "reset-hash" && r.ExpiresAt.After(time.Now())
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.Event) bool {
			return e.Type == constants.EventPasswordResetRequested &&
				e.Data["email"] == user.Email &&
				len(e.Data["reset_url"]) > len("https://jild.app/reset-password?token=")
		})).
		Return(nil)

	require.NoError(t, fx.service.ForgotPassword(ctx, "jane@example.com"))
}

func TestAuthService_ForgotPassword_RequiresEmail(t *testing.T) {
	fx := createTestAuthService(t, 5)

	err := fx.service.ForgotPassword(context.Background(), "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	userID := uuid.New()
	reset := &entity.PasswordReset{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}

	fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("reset-token").Return("reset-hash")
	fx.runTx()
	fx.authRepo.EXPECT().FindPasswordResetByHash(ctx, "reset-hash").Return(reset, nil)
	fx.authRepo.EXPECT().MarkPasswordResetUsed(ctx, reset.ID).Return(nil)
	fx.authRepo.EXPECT().UpdatePasswordHash(ctx, userID, constants.AuthProviderEmail, "new-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	fx.broadcaster.EXPECT().
		Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedOut}).
		Return()

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()
	usedAt := time.Now().Add(-time.Minute)

	fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
	fx.tokenService.EXPECT().HashToken("reset-token").Return("reset-hash")
	fx.runTx()
	fx.authRepo.EXPECT().FindPasswordResetByHash(ctx, "reset-hash").
		Return(&entity.PasswordReset{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour), UsedAt: &usedAt}, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_Validation(t *testing.T) {
	fx := createTestAuthService(t, 5)
	ctx := context.Background()

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Password: "newsecret", ConfirmPassword: "newsecret"})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	err = fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "t", Password: "newsecret", ConfirmPassword: "other"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}
