package components

import (
	"scrap-market/internal/domain/request"
	"scrap-market/internal/handler"
	"scrap-market/internal/handler/api"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/infra/readstore"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	upstreamModule,
	fx.Provide(
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		func(cfg config.Config) request.Policy {
			return request.Policy{Strict: cfg.Ledger.StrictTransitions}
		},
		commands.NewRequestCommands,
		queries.NewRequestQueries,
		middleware.NewAuthMiddleware,
		api.NewRequestHandler,
	),
	fx.Invoke(handler.RegisterLedgerRoutes),
)
