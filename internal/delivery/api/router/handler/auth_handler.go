// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jild/internal/delivery/api/response"
	"jild/internal/delivery/api/validator"
	"jild/internal/domain/entity"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in, sign-out and password recovery.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest is the sign-up form. Required fields and password rules are
// checked by the usecase so the messages match the form's.
type SignUpRequest struct {
	FirstName       string `json:"first_name" validate:"max=100"`
	LastName        string `json:"last_name" validate:"max=100"`
	Email           string `json:"email" validate:"omitempty,email,max=254"`
	Password        string `json:"password" validate:"max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"max=72"`
	AgreeTerms      bool   `json:"agree_terms"`
}

// SignInRequest is the sign-in form.
type SignInRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=72"`
}

// RefreshTokenRequest carries the refresh token for sign-out and refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ForgotPasswordRequest asks for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=254"`
}

// ResetPasswordRequest redeems a reset link.
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"max=72"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SessionResponse is a freshly issued session.
type SessionResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

func newSessionResponse(session *usecase.Session) SessionResponse {
	return SessionResponse{
		User:         newUserResponse(session.User),
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
	}
}

// bindAndValidate is the Bind then Validate step shared by every JSON handler.
// A non-nil error has already been rendered.
func bindAndValidate(c echo.Context, req any, bindMessage string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, bindMessage)
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, "Please check the highlighted fields", validator.FieldErrors(err))
	}

	return true, nil
}

// SignUp handles account creation.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if ok, err := bindAndValidate(c, &req, "Invalid sign-up input"); !ok {
		return err
	}

	user, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreeTerms:      req.AgreeTerms,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// SignIn handles email and password sign-in.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if ok, err := bindAndValidate(c, &req, "Invalid sign-in input"); !ok {
		return err
	}

	session, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// SignOut revokes the session of the given refresh token.
func (h *AuthHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req, "Invalid sign-out input"); !ok {
		return err
	}

	if err := h.authUC.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Refresh rotates a session's tokens.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req, "Invalid refresh token input"); !ok {
		return err
	}

	session, err := h.authUC.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// ForgotPassword always answers 202 for a well-formed email so that
// registered addresses cannot be probed.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid email"); !ok {
		return err
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message": "Check your email for the password reset link",
	})
}

// ResetPassword sets a new password from a reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bindAndValidate(c, &req, "Invalid reset input"); !ok {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Your password has been updated. Please sign in.",
	})
}
