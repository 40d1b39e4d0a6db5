package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"jild/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestBroadcaster() *broadcaster {
	return NewBroadcaster(slog.New(slog.NewTextHandler(io.Discard, nil))).(*broadcaster)
}

func receive(t *testing.T, ch <-chan service.SessionChange) service.SessionChange {
	t.Helper()

	select {
	case change, ok := <-ch:
		require.True(t, ok, "channel closed")

		return change
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for session change")
	}

	return service.SessionChange{}
}

func TestBroadcaster_DeliversToSubscribersOfUser(t *testing.T) {
	b := newTestBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alice, bob := uuid.New(), uuid.New()
	aliceCh := b.Subscribe(ctx, alice)
	bobCh := b.Subscribe(ctx, bob)

	b.Publish(service.SessionChange{UserID: alice, Event: service.SessionEventSignedOut})

	got := receive(t, aliceCh)
	assert.Equal(t, service.SessionEventSignedOut, got.Event)
	assert.Nil(t, got.Session)

	select {
	case change := <-bobCh:
		t.Fatalf("unexpected change for other user: %+v", change)
	default:
	}
}

func TestBroadcaster_SlowSubscriberKeepsLatest(t *testing.T) {
	b := newTestBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userID := uuid.New()
	ch := b.Subscribe(ctx, userID)

	b.Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedIn})
	b.Publish(service.SessionChange{UserID: userID, Event: service.SessionEventRefreshed})
	b.Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedOut})

	assert.Equal(t, service.SessionEventSignedOut, receive(t, ch).Event)
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	b := newTestBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())

	userID := uuid.New()
	ch := b.Subscribe(ctx, userID)
	require.Equal(t, 1, b.subscriberCount(userID))

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	assert.Eventually(t, func() bool { return b.subscriberCount(userID) == 0 }, time.Second, 10*time.Millisecond)

	// Publishing after the subscriber left must not panic.
	b.Publish(service.SessionChange{UserID: userID, Event: service.SessionEventSignedIn})
}
