package impl

import (
	"context"
	"log/slog"

	deliverycontext "jild/internal/delivery/context"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/service"
	"jild/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenService service.TokenService
	broadcaster  service.SessionBroadcaster
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokenService service.TokenService,
	broadcaster service.SessionBroadcaster,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokenService: tokenService,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentSession validates an access token and returns its identity.
func (srv *sessionService) CurrentSession(ctx context.Context, accessToken string) (*service.SessionIdentity, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	identity := &service.SessionIdentity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

// Subscribe sends the current session first, then forwards every change
// published for that user until ctx ends.
func (srv *sessionService) Subscribe(ctx context.Context, current *service.SessionIdentity) <-chan service.SessionChange {
	out := make(chan service.SessionChange, 1)
	out <- service.SessionChange{
		UserID:  current.UserID,
		Event:   service.SessionEventInitial,
		Session: current,
	}

	changes := srv.broadcaster.Subscribe(ctx, current.UserID)
	srv.log(ctx).Debug("Session stream opened", slog.Any("userID", current.UserID))

	go func() {
		defer close(out)

		for change := range changes {
			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
