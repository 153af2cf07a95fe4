package components

import (
	"context"
	"log/slog"
	"sync"

	"scrap-market/internal/handler"
	"scrap-market/internal/handler/api"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/infra/readstore"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"
	"scrap-market/internal/usecase/shared"
	"scrap-market/internal/worker/propagation"

	"go.uber.org/fx"
)

var CoordinatorModule = fx.Module("coordinator",
	upstreamModule,
	fx.Provide(
		fx.Annotate(
			readstore.NewAssignmentReadStore,
			fx.As(new(queries.AssignmentReadStore)),
			fx.As(new(commands.ClaimChecker)),
		),
		newPropagationCommands,
		func(p commands.PropagationCommands) commands.Pusher {
			return p
		},
		commands.NewAssignmentCommands,
		queries.NewDealerQueries,
		queries.NewAdminQueries,
		propagation.NewReconciler,
		middleware.NewAuthMiddleware,
		api.NewDealerHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(
		handler.RegisterCoordinatorRoutes,
		startReconciler,
	),
)

func newPropagationCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	ledger shared.LedgerGateway,
	recorder commands.PropagationRecorder,
	clk clock.Clock,
) commands.PropagationCommands {
	return commands.NewPropagationCommands(uow, ledger, recorder, cfg.Propagation, clk)
}

func startReconciler(lc fx.Lifecycle, r *propagation.Reconciler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Propagation.Enabled {
		logger.Warn("propagation reconciler disabled; failed pushes stay pending")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.Start(ctx, cfg.Propagation.Interval)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
