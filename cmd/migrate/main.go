// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"

	"jild/config"
	logs "jild/internal/infra/log"
	"jild/internal/infra/metrics"
	"jild/internal/infra/persistence/model"
	"jild/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			metrics.New,
			postgres.New,
		),
		fx.Invoke(
			migrate,
		),
	).Run()
}

// migrate runs after the pool's OnStart hook has pinged the database.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			models := model.All()
			if err := params.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
				return errors.Wrap(err, "auto migrate")
			}

			params.Logger.Info("Schema is up to date", slog.Int("tables", len(models)))

			return params.Shutdown()
		},
	})
}
