package bootstrap

import (
	"scrap-market/internal/pkg/config"

	"go.uber.org/fx"
)

// ServiceName names the running binary. It selects the migrations, the
// required settings and the label on logs and metrics.
type ServiceName string

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(validateConfig),
)

func validateConfig(cfg config.Config, service ServiceName) error {
	return cfg.Validate(string(service))
}
