package middleware

import (
	"log/slog"

	"jild/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLog returns the slog-echo access log. 4xx log at warn, 5xx at error.
// Health probes and the metrics scrape are not logged. Request and response
// headers are only included in debug mode.
func NewAccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	ignored := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		ignored = append(ignored, cfg.Metrics.Path)
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:       slog.LevelInfo,
		ClientErrorLevel:   slog.LevelWarn,
		ServerErrorLevel:   slog.LevelError,
		WithUserAgent:      true,
		WithRequestID:      true,
		WithRequestHeader:  cfg.Env.Debug,
		WithResponseHeader: cfg.Env.Debug,
		Filters:            []slogecho.Filter{slogecho.IgnorePath(ignored...)},
	})
}
