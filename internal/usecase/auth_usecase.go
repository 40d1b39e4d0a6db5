// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"jild/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// SignInInput defines the credentials of a sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// ResetPasswordInput redeems a reset link.
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// Session is a signed-in session handed to the client.
type Session struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthUsecase defines sign-up, sign-in, sign-out and password recovery.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)
	SignIn(ctx context.Context, input *SignInInput) (*Session, error)
	SignOut(ctx context.Context, refreshToken string) error
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
