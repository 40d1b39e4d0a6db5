package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionIdentity is the signed-in identity delivered to subscribers.
type SessionIdentity struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionChange carries the current session of a user, nil after sign-out.
type SessionChange struct {
	UserID  uuid.UUID        `json:"user_id"`
	Event   string           `json:"event"`
	Session *SessionIdentity `json:"session"`
}

// Session change events.
const (
	SessionEventInitial   = "INITIAL_SESSION"
	SessionEventSignedIn  = "SIGNED_IN"
	SessionEventSignedOut = "SIGNED_OUT"
	SessionEventRefreshed = "TOKEN_REFRESHED"
)

// SessionBroadcaster fans session changes out to subscribers of a user.
type SessionBroadcaster interface {
	// Publish delivers change to every current subscriber of change.UserID.
	Publish(change SessionChange)

	// Subscribe returns a channel of changes for userID that is closed when ctx ends.
	Subscribe(ctx context.Context, userID uuid.UUID) <-chan SessionChange
}
