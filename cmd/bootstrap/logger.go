package bootstrap

import (
	"log/slog"

	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	}),
)

func NewLogger(cfg config.Config, service ServiceName) *middleware.Logger {
	return middleware.NewLogger(cfg.Log, string(service))
}
