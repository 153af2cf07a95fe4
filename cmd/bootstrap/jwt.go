package bootstrap

import (
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/jwt"

	"go.uber.org/fx"
)

// JWTModule is only part of the Identity Authority; the other services
// never see the signing secret.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}
