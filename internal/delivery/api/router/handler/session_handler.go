package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"jild/internal/delivery/api/response"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHeartbeatInterval = 25 * time.Second

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler answers who is signed in and streams changes to that answer.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
		heartbeat: defaultHeartbeatInterval,
	}
}

// CurrentSession returns the session of the request, or null when anonymous.
// Mounted behind OptionalAuth.
func (h *SessionHandler) CurrentSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"session": deliverycontext.GetIdentity(c),
	})
}

// Events streams session changes as Server-Sent Events. The first event is
// the current session; a SIGNED_OUT event carries a null session.
func (h *SessionHandler) Events(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	changes := h.sessionUC.Subscribe(ctx, identity)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case change, ok := <-changes:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(change)
			if err != nil {
				log.Error("Failed to encode session change", slog.Any("error", err))

				return errors.WithStack(err)
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", change.Event, payload); err != nil {
				log.Debug("Session stream closed by client", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}
