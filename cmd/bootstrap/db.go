package bootstrap

import (
	"context"
	"log/slog"

	"scrap-market/internal/infra/db"
	"scrap-market/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(pool *pgxpool.Pool) db.DBTX {
			return pool
		},
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, service ServiceName, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(cfg.DB.BuildDSN(), string(service)); err != nil {
			return nil, err
		}
		logger.Info("database schema is up to date")
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
