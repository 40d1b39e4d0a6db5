package impl

import (
	"context"
	"fmt"
	"testing"

	"jild/config"
	"jild/internal/domain/entity"
	"jild/internal/infra/metrics"
	mockRepo "jild/internal/mocks/repository"
	mockSvc "jild/internal/mocks/service"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockNotificationService,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	service := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Metrics:         metrics.New(),
		Config: &config.Config{Notification: &config.NotificationConfig{
			Title: "Your skin analysis is ready",
			Body:  "Open Jild to see your routine.",
		}},
		Logger: newDiscardLogger(),
	})

	return service, deviceRepo, notificationSvc
}

func TestNotificationService_NotifyAnalysisReady_Success(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	staleID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		{ID: staleID, UserID: userID, FCMToken: "token-2", IsActive: true},
	}

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-2"}, "Your skin analysis is ready", "Open Jild to see your routine.", mock.Anything).
		Return(1, 1, []string{"token-2"}, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, staleID).Return(nil)

	result, err := service.NotifyAnalysisReady(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Devices: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotificationService_NotifyAnalysisReady_NoDevices(t *testing.T) {
	service, deviceRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)

	result, err := service.NotifyAnalysisReady(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestNotificationService_NotifyAnalysisReady_Batches(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := make([]*entity.UserDevice, 0, 501)
	for i := range 501 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).
		Once()
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 1 }), mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	result, err := service.NotifyAnalysisReady(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 500, result.Failed)
}

func TestNotificationService_NotifyAnalysisReady_AllBatchesFail(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-1"}}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("unavailable"))

	result, err := service.NotifyAnalysisReady(ctx, userID)
	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_NotifyAnalysisReady_DeviceLookupFails(t *testing.T) {
	service, deviceRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, errors.New("db down"))

	_, err := service.NotifyAnalysisReady(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch devices")
}

func TestNotificationService_NotifyAnalysisReady_FirebaseDisabled(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewNotificationService(NotificationServiceParams{
		DeviceRepo: deviceRepo,
		Metrics:    metrics.New(),
		Config:     &config.Config{},
		Logger:     newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true}}, nil)

	result, err := service.NotifyAnalysisReady(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Devices: 1}, result)
}
