package main

import (
	"context"
	"log/slog"
	"os"

	"jild/config"
	"jild/internal/delivery"
	"jild/internal/delivery/api"
	"jild/internal/delivery/api/middleware"
	"jild/internal/delivery/api/router/handler"
	"jild/internal/domain/service"
	"jild/internal/infra/auth"
	"jild/internal/infra/inference"
	logs "jild/internal/infra/log"
	"jild/internal/infra/metrics"
	"jild/internal/infra/persistence/postgres"
	"jild/internal/infra/pubsub"
	"jild/internal/infra/qrcode"
	"jild/internal/infra/session"
	"jild/internal/infra/storage"
	"jild/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewQuestionnaireRepository,
			postgres.NewSkinAnalysisRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			session.NewBroadcaster,
			pubsub.NewEventPublisher,
			inference.NewClient,
			storage.NewPhotoStore,
			newQRCodeService,
		),
	)
}

// newQRCodeService unwraps the QR code section so the service stays config-agnostic.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewQuestionnaireService,
			impl.NewAnalysisService,
			impl.NewShopService,
			impl.NewProfileService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewQuestionnaireHandler,
			handler.NewAnalysisHandler,
			handler.NewShopHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
