package usecase

import (
	"context"

	"jild/internal/domain/service"
)

// SessionUsecase answers "who is signed in" and streams changes to that answer.
type SessionUsecase interface {
	// CurrentSession validates an access token and returns its identity.
	CurrentSession(ctx context.Context, accessToken string) (*service.SessionIdentity, error)

	// Subscribe delivers current immediately, then every later change for the
	// same user. The channel is closed when ctx ends.
	Subscribe(ctx context.Context, current *service.SessionIdentity) <-chan service.SessionChange
}
