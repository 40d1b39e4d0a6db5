package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jild/config"
	"jild/internal/domain/constants"
	"jild/internal/domain/service"
	mockusecase "jild/internal/mocks/usecase"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockNotificationUsecase) {
	notificationUC := mockusecase.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, event *service.Event, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/jild/subscriptions/worker"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_QuestionnaireCompleted(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)
	userID := uuid.New()

	notificationUC.EXPECT().
		NotifyAnalysisReady(mock.Anything, userID).
		Return(&usecase.NotificationResult{Devices: 2, Sent: 2}, nil)

	rec := push(h, pushBody(t, &service.Event{
		ID:     "evt-1",
		Type:   constants.EventQuestionnaireCompleted,
		UserID: userID.String(),
		Data:   map[string]string{"primary_label": "Acne"},
	}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_EventTypeFromAttributes(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)
	userID := uuid.New()

	notificationUC.EXPECT().
		NotifyAnalysisReady(mock.Anything, userID).
		Return(&usecase.NotificationResult{}, nil)

	rec := push(h, pushBody(t, &service.Event{ID: "evt-1", UserID: userID.String()},
		map[string]string{"event_type": constants.EventQuestionnaireCompleted}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NotificationFailureIsRetried(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)
	userID := uuid.New()

	notificationUC.EXPECT().
		NotifyAnalysisReady(mock.Anything, userID).
		Return(nil, errors.New("fcm unavailable"))

	rec := push(h, pushBody(t, &service.Event{
		ID:     "evt-1",
		Type:   constants.EventQuestionnaireCompleted,
		UserID: userID.String(),
	}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PoisonMessagesAreAcked(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	for _, event := range []*service.Event{
		{ID: "evt-1", Type: constants.EventQuestionnaireCompleted, UserID: "not-a-uuid"},
		{ID: "evt-2", Type: constants.EventPasswordResetRequested, UserID: ""},
		{ID: "evt-3", Type: "order.placed", UserID: uuid.NewString()},
	} {
		rec := push(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code, event.ID)
	}
}

func TestPushHandler_PasswordResetRequested(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := push(h, pushBody(t, &service.Event{
		ID:     "evt-1",
		Type:   constants.EventPasswordResetRequested,
		UserID: uuid.NewString(),
		Data:   map[string]string{"expires_at": "2026-01-01T00:00:00Z"},
	}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	tests := map[string]string{
		"not json":         `{"message":`,
		"not base64":       `{"message":{"data":"%%%"}}`,
		"data is not json": `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain text")) + `"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := push(h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := push(h, pushBody(t, &service.Event{ID: "evt-1", Type: "order.placed"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_DevelopSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, &service.Event{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(req.Context(), &msg, &service.Event{RequestID: "from-event"}))

	generated := h.extractRequestID(req.Context(), &msg, &service.Event{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
