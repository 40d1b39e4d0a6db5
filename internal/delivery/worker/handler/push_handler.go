package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/constants"
	"jild/internal/domain/service"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks a failure that should be redelivered by Pub/Sub.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler consumes domain events delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions sign their requests.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush answers 200 for handled and poison messages and 503 when the
// message should be redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.Type == "" {
		event.Type = pushMsg.Message.Attributes["event_type"]
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.dispatch(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) dispatch(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case constants.EventQuestionnaireCompleted:
		return h.handleQuestionnaireCompleted(ctx, event)
	case constants.EventPasswordResetRequested:
		return h.handlePasswordResetRequested(ctx, event)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Ignoring unknown event type")

		return nil
	}
}

// handleQuestionnaireCompleted pushes "your analysis is ready" to the user's devices.
func (h *PushHandler) handleQuestionnaireCompleted(ctx context.Context, event *service.Event) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user_id")
	}

	result, err := h.notificationUC.NotifyAnalysisReady(ctx, userID)
	if err != nil {
		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Analysis-ready notification sent",
		slog.String("user_id", event.UserID),
		slog.String("primary_label", event.Data["primary_label"]),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return nil
}

// handlePasswordResetRequested records the request. Mail delivery is done by
// the mail relay subscribed to the same topic; the link itself is never logged.
func (h *PushHandler) handlePasswordResetRequested(ctx context.Context, event *service.Event) error {
	if _, err := uuid.Parse(event.UserID); err != nil {
		return errors.Wrap(err, "invalid user_id")
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Password reset requested",
		slog.String("user_id", event.UserID),
		slog.String("expires_at", event.Data["expires_at"]),
	)

	return nil
}

// extractRequestID prefers message attributes, then the event body, then the
// X-Request-Id of the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
