package components

import (
	"scrap-market/internal/infra/client"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/usecase/shared"

	"go.uber.org/fx"
)

// upstreamModule provides the HTTP clients for the other services. Only
// the ones a service actually depends on get constructed.
var upstreamModule = fx.Module("upstream",
	fx.Provide(
		func(cfg config.Config, clk clock.Clock) shared.TokenValidator {
			return client.NewIdentityClient(cfg.Upstream, clk)
		},
		func(cfg config.Config) shared.LedgerGateway {
			return client.NewLedgerClient(cfg.Upstream)
		},
		func(cfg config.Config) shared.PricingGateway {
			return client.NewPricingClient(cfg.Upstream)
		},
	),
)
