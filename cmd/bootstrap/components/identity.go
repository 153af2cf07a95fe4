package components

import (
	"scrap-market/internal/handler"
	"scrap-market/internal/handler/api"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/infra/readstore"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/jwt"
	"scrap-market/internal/pkg/password"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"
	"scrap-market/internal/usecase/shared"

	"go.uber.org/fx"
)

// IdentityModule verifies tokens in-process instead of calling itself.
var IdentityModule = fx.Module("identity",
	fx.Provide(
		password.NewDefaultHasher,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		queries.NewIdentityQueries,
		func(q queries.IdentityQueries) shared.TokenValidator {
			return q
		},
		newAuthCommands,
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
	),
	fx.Invoke(handler.RegisterIdentityRoutes),
)

func newAuthCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher *password.Hasher,
	clk clock.Clock,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, readStore, jwtService, hasher, clk, cfg.JWT.AllowAdminSignup)
}
