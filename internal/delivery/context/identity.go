package context

import (
	"context"

	"jild/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for the signed-in session identity.
	KeyIdentity ContextKey = "identity"

	// KeyAccessToken is the key for the raw bearer token of the request.
	KeyAccessToken ContextKey = "access_token"
)

// SetIdentity stores the signed-in identity on both echo.Context and the request context.
func SetIdentity(c echo.Context, identity *service.SessionIdentity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the identity set by the auth middleware, nil for anonymous requests.
func GetIdentity(c echo.Context) *service.SessionIdentity {
	identity, _ := c.Get(string(KeyIdentity)).(*service.SessionIdentity)

	return identity
}

// GetUserID returns the signed-in user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := GetIdentity(c)
	if identity == nil || identity.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return identity.UserID, true
}

// WithIdentity returns a new context carrying identity.
func WithIdentity(ctx context.Context, identity *service.SessionIdentity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the identity from a standard context.Context.
func IdentityFromContext(ctx context.Context) *service.SessionIdentity {
	identity, _ := ctx.Value(KeyIdentity).(*service.SessionIdentity)

	return identity
}
