// Package session fans session changes out to live subscribers.
package session

import (
	"context"
	"log/slog"
	"sync"

	"jild/internal/domain/service"

	"github.com/google/uuid"
)

type subscriber struct {
	ch chan service.SessionChange
}

type broadcaster struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*subscriber]struct{}
	logger *slog.Logger
}

// NewBroadcaster creates an in-process broadcaster.
func NewBroadcaster(logger *slog.Logger) service.SessionBroadcaster {
	return &broadcaster{
		subs:   make(map[uuid.UUID]map[*subscriber]struct{}),
		logger: logger,
	}
}

// Publish never blocks. A subscriber that has not read the previous change
// only sees the latest one.
func (b *broadcaster) Publish(change service.SessionChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[change.UserID] {
		select {
		case sub.ch <- change:
			continue
		default:
		}

		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- change
	}
}

// Subscribe registers a subscriber until ctx ends, then closes its channel.
func (b *broadcaster) Subscribe(ctx context.Context, userID uuid.UUID) <-chan service.SessionChange {
	sub := &subscriber{ch: make(chan service.SessionChange, 1)}

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscriber]struct{})
	}
	b.subs[userID][sub] = struct{}{}
	b.mu.Unlock()

	b.logger.Debug("Session subscriber added", slog.Any("userID", userID))

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subs[userID], sub)
		if len(b.subs[userID]) == 0 {
			delete(b.subs, userID)
		}
		close(sub.ch)
		b.mu.Unlock()

		b.logger.Debug("Session subscriber removed", slog.Any("userID", userID))
	}()

	return sub.ch
}

// subscriberCount is used by tests.
func (b *broadcaster) subscriberCount(userID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs[userID])
}
