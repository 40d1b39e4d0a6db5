package usecase

import (
	"context"

	"github.com/google/uuid"
)

// NotificationResult summarises one push fan-out.
type NotificationResult struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase sends push notifications for domain events.
type NotificationUsecase interface {
	// NotifyAnalysisReady tells every active device of userID that results are ready.
	NotifyAnalysisReady(ctx context.Context, userID uuid.UUID) (*NotificationResult, error)
}
