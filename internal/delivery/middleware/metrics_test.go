package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "jild/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "app error", err: errors.WithStack(domainerrors.ErrHealthGate), want: http.StatusUnprocessableEntity},
		{name: "echo error", err: echo.ErrNotFound, want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			assert.Equal(t, tt.want, statusOf(c, tt.err))
		})
	}

	t.Run("written response", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		_ = c.NoContent(http.StatusAccepted)

		assert.Equal(t, http.StatusAccepted, statusOf(c, nil))
	})
}
