package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/service"
	"jild/internal/infra/session"
	mockService "jild/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSessionService_CurrentSession(t *testing.T) {
	tokenService := mockService.NewMockTokenService(t)
	srv := NewSessionService(tokenService, session.NewBroadcaster(newDiscardLogger()), newDiscardLogger())

	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	tokenService.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
		UserID:           userID,
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
	}, nil)
	tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("token is expired"))

	identity, err := srv.CurrentSession(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.True(t, expiresAt.Equal(identity.ExpiresAt))

	_, err = srv.CurrentSession(context.Background(), "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = srv.CurrentSession(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionService_Subscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	broadcaster := session.NewBroadcaster(newDiscardLogger())
	srv := NewSessionService(mockService.NewMockTokenService(t), broadcaster, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	current := &service.SessionIdentity{UserID: uuid.New(), Email: "jane@example.com"}

	changes := srv.Subscribe(ctx, current)

	first := <-changes
	assert.Equal(t, service.SessionEventInitial, first.Event)
	assert.Equal(t, current, first.Session)

	broadcaster.Publish(service.SessionChange{UserID: current.UserID, Event: service.SessionEventSignedOut})

	select {
	case change := <-changes:
		assert.Equal(t, service.SessionEventSignedOut, change.Event)
		assert.Nil(t, change.Session)
	case <-time.After(time.Second):
		t.Fatal("signed-out change not delivered")
	}

	cancel()
	for range changes {
	}
}
