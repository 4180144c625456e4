package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ecomlite/internal/config"
	"github.com/polkiloo/ecomlite/internal/domain/repository"
)

// Module opens the shop database and exposes its repositories.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.Factory { return s },
	),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.ProductRepository { return f.Products() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

// registerLifecycle refuses to start without a reachable database and
// releases the pool on shutdown.
func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			storage.Close()
			storage.logger.Info("database pool closed")
			return nil
		},
	})
}
