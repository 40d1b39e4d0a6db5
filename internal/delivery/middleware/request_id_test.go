package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "jild/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seenCtxID string
	var hasLogger bool
	e := echo.New()
	e.Use(m.Process)
	e.GET("/", func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc", rec.Body.String())
		assert.Equal(t, "abc", seenCtxID)
		assert.True(t, hasLogger)
	})

	t.Run("issues a uuid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})
}
