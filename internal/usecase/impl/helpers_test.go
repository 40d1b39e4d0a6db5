package impl

import (
	"io"
	"log/slog"
	"time"

	"jild/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
			PasswordMinLength: 6,
			ResetTokenTTL:     time.Hour,
			ResetRedirectURL:  "https://jild.app/reset-password",
		},
	}
}
