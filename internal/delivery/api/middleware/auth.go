package middleware

import (
	"strings"

	"jild/internal/delivery/api/response"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// accessTokenQueryParam lets EventSource clients, which cannot set
	// headers, authenticate the session stream.
	accessTokenQueryParam = "access_token"
)

// AuthMiddleware resolves the bearer token into a session identity.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate rejects the request with 401 unless it carries a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := tokenFrom(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		identity, err := m.sessionUC.CurrentSession(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuth sets the identity when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := tokenFrom(c); ok {
			if identity, err := m.sessionUC.CurrentSession(c.Request().Context(), token); err == nil {
				deliverycontext.SetIdentity(c, identity)
			}
		}

		return next(c)
	}
}

// GetUserID returns the user id set by Authenticate or OptionalAuth.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

func tokenFrom(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, bearerPrefix)
		token = strings.TrimSpace(token)

		return token, found && token != ""
	}

	if token := c.QueryParam(accessTokenQueryParam); token != "" {
		return token, true
	}

	return "", false
}
