package impl

import (
	"context"
	"log/slog"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	"jild/internal/domain/repository"
	"jild/internal/domain/service"
	"jild/internal/infra/metrics"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	title           string
	body            string
	metrics         *metrics.Metrics
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Metrics         *metrics.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
	if params.Config.Notification != nil {
		srv.title = params.Config.Notification.Title
		srv.body = params.Config.Notification.Body
	}

	return srv
}

// NotifyAnalysisReady pushes the analysis-ready message to every active
// device of the user. Tokens Firebase reports as invalid are removed. An
// error is returned only when nothing could be sent and a batch failed, so
// the caller may retry.
func (s *notificationService) NotifyAnalysisReady(ctx context.Context, userID uuid.UUID) (*usecase.NotificationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.NotificationResult{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Debug("No devices to notify", slog.Any("userID", userID))

		return result, nil
	}

	if s.notificationSvc == nil {
		logger.Warn("Push notifications are not configured, skipping", slog.Any("userID", userID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	data := map[string]string{
		"type":    constants.EventQuestionnaireCompleted,
		"user_id": userID.String(),
	}

	var (
		invalidTokens []string
		lastErr       error
	)
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, s.title, s.body, data)
		if err != nil {
			logger.Error("Failed to send notification batch",
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)
			lastErr = err

			continue
		}

		result.Sent += successCount
		result.Failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	for _, token := range invalidTokens {
		device, ok := deviceMap[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			logger.Warn("Failed to delete invalid device", slog.Any("deviceID", device.ID), slog.Any("error", err))

			continue
		}
		result.InvalidTokens++
	}

	s.metrics.NotificationsSentTotal.WithLabelValues("sent").Add(float64(result.Sent))
	s.metrics.NotificationsSentTotal.WithLabelValues("failed").Add(float64(result.Failed))

	logger.Info("Analysis-ready notification sent",
		slog.Any("userID", userID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	if result.Sent == 0 && lastErr != nil {
		return result, errors.Wrap(lastErr, "failed to send notifications")
	}

	return result, nil
}
