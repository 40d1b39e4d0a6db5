package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/service"
	mockusecase "jild/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// whoami answers with the user id seen by the handler, or "anonymous".
func whoami(c echo.Context) error {
	if userID, ok := GetUserID(c); ok {
		return c.String(http.StatusOK, userID.String())
	}

	return c.String(http.StatusOK, "anonymous")
}

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockSessionUsecase) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	m := NewAuthMiddleware(sessionUC)

	e := echo.New()
	e.GET("/private", whoami, m.Authenticate)
	e.GET("/public", whoami, m.OptionalAuth)

	return e, sessionUC
}

func get(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		authorization string
		setup         func(*mockusecase.MockSessionUsecase)
		wantStatus    int
		wantBody      string
	}{
		{
			name:       "missing header",
			target:     "/private",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header is missing",
		},
		{
			name:          "not a bearer token",
			target:        "/private",
			authorization: "Basic dXNlcjpwYXNz",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "Authorization header is missing",
		},
		{
			name:          "invalid token",
			target:        "/private",
			authorization: "Bearer bad",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().CurrentSession(mock.Anything, "bad").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid or expired token",
		},
		{
			name:          "valid header",
			target:        "/private",
			authorization: "Bearer good",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().CurrentSession(mock.Anything, "good").Return(&service.SessionIdentity{UserID: userID}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
		{
			name:   "query parameter for event streams",
			target: "/private?access_token=good",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().CurrentSession(mock.Anything, "good").Return(&service.SessionIdentity{UserID: userID}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sessionUC := newAuthTestEcho(t)
			if tt.setup != nil {
				tt.setup(sessionUC)
			}

			rec := get(e, tt.target, tt.authorization)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		e, _ := newAuthTestEcho(t)

		rec := get(e, "/public", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("invalid token falls back to anonymous", func(t *testing.T) {
		e, sessionUC := newAuthTestEcho(t)
		sessionUC.EXPECT().CurrentSession(mock.Anything, "stale").Return(nil, assert.AnError)

		rec := get(e, "/public", "Bearer stale")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		e, sessionUC := newAuthTestEcho(t)
		sessionUC.EXPECT().CurrentSession(mock.Anything, "good").Return(&service.SessionIdentity{UserID: userID}, nil)

		rec := get(e, "/public", "Bearer good")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})
}

func TestAuthenticate_IdentityReachesRequestContext(t *testing.T) {
	userID := uuid.New()
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	sessionUC.EXPECT().CurrentSession(mock.Anything, "good").Return(&service.SessionIdentity{UserID: userID}, nil)

	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		identity := deliverycontext.IdentityFromContext(c.Request().Context())
		require.NotNil(t, identity)

		return c.String(http.StatusOK, identity.UserID.String())
	}, NewAuthMiddleware(sessionUC).Authenticate)

	rec := get(e, "/private", "Bearer good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}
