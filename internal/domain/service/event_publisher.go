package service

import (
	"context"
	"time"
)

// Event is a domain event handed to the message queue. Orders never produce one.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	UserID     string            `json:"user_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

// Attributes are the message attributes used for subscription filtering and tracing.
func (e *Event) Attributes() map[string]string {
	attributes := map[string]string{
		"event_id":   e.ID,
		"event_type": e.Type,
		"user_id":    e.UserID,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends one event for async processing.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
