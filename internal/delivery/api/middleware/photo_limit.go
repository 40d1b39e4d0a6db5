package middleware

import (
	"net/http"
	"strconv"

	domainerrors "jild/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// photoFormOverhead leaves room for the multipart boundary and part headers.
const photoFormOverhead = 64 * 1024

// PhotoBodyLimit caps a photo upload just above maxImageBytes and reports an
// oversized body as ErrImageTooLarge.
func PhotoBodyLimit(maxImageBytes int64) echo.MiddlewareFunc {
	limit := echomiddleware.BodyLimit(strconv.FormatInt(maxImageBytes+photoFormOverhead, 10) + "B")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limit(next)

		return func(c echo.Context) error {
			err := limited(c)
			if IsBodyTooLarge(err) {
				return domainerrors.ErrImageTooLarge
			}

			return err
		}
	}
}

// IsBodyTooLarge reports whether err is echo's 413 from a body limit.
func IsBodyTooLarge(err error) bool {
	var httpErr *echo.HTTPError

	return errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge
}
