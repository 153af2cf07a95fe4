package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"scrap-market/cmd/bootstrap/components"
	"scrap-market/internal/pkg/clock"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Module is what every service shares. Each binary adds its component
// module on top.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	ServerModule,
	fx.Provide(clock.NewRealClock),
	components.PersistenceModule,
)

// Run starts the service and blocks until it receives a stop signal.
func Run(service ServiceName, opts ...fx.Option) {
	// Never expose debug output because of a configuration mistake
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	app := fx.New(
		fx.Supply(service),
		Module,
		fx.Options(opts...),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "service", service, "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "service", service, "error", err)
	}

	slog.Info("application stopped", "service", service)
}
