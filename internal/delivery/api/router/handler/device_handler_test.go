package handler

import (
	"net/http"
	"testing"

	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	mockusecase "jild/internal/mocks/usecase"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTestEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockDeviceUsecase) {
	deviceUC := mockusecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/devices", signedInAs(userID))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetUserDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestEcho(t, userID)
	deviceID := uuid.New()

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "fcm", DeviceID: "pixel-8", Platform: "android", IsActive: true}, nil)

	rec := doJSON(e, http.MethodPost, "/devices", `{"fcm_token":"fcm","device_id":"pixel-8","platform":"android"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	device := decodeData[entity.UserDevice](t, rec)
	assert.Equal(t, deviceID, device.ID)
	assert.True(t, device.IsActive)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	e, _ := newDeviceTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodPost, "/devices", `{"fcm_token":"fcm","device_id":"tv","platform":"tizen"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"platform": "oneof=ios android web"}, decodeEnvelope(t, rec).Error.Details)
}

func TestDeviceHandler_GetUserDevices(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestEcho(t, userID)

	deviceUC.EXPECT().GetUserDevices(mock.Anything, userID).Return([]*entity.UserDevice{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec := doJSON(e, http.MethodGet, "/devices", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.UserDevice](t, rec), 2)
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestEcho(t, userID)
	deviceID := uuid.New()

	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "fresh").Return(nil)

	rec := doJSON(e, http.MethodPut, "/devices/"+deviceID.String()+"/token", `{"fcm_token":"fresh"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_UpdateFCMToken_InvalidID(t *testing.T) {
	e, _ := newDeviceTestEcho(t, uuid.New())

	rec := doJSON(e, http.MethodPut, "/devices/not-a-uuid/token", `{"fcm_token":"fresh"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestEcho(t, userID)
	deviceID := uuid.New()

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(nil)

	rec := doJSON(e, http.MethodDelete, "/devices/"+deviceID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeviceHandler_DeactivateDevice_NotFound(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestEcho(t, userID)
	deviceID := uuid.New()

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrDeviceNotFound)

	rec := doJSON(e, http.MethodDelete, "/devices/"+deviceID.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
