package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/repository"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var platforms = []string{constants.PlatformIOS, constants.PlatformAndroid, constants.PlatformWeb}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	if !slices.Contains(platforms, deviceInfo.Platform) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	existing, err := s.deviceRepo.FindDeviceByUserAndDeviceID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}
		existing.FCMToken = deviceInfo.FCMToken
		existing.IsActive = true
		existing.UpdatedAt = s.now()

		return existing, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device")
	}

	now := s.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithDetails("device already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if fcmToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("device belongs to another user")
	}

	return device, nil
}
