package components

import (
	"scrap-market/internal/handler"
	"scrap-market/internal/handler/api"
	"scrap-market/internal/infra/readstore"
	"scrap-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		queries.NewPricingQueries,
		api.NewPricingHandler,
	),
	fx.Invoke(handler.RegisterPricingRoutes),
)
