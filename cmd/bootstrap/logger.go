package bootstrap

import (
	"log/slog"

	"dryclean-api/internal/handler/middleware"
	"dryclean-api/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const serviceName = "dryclean-api"

// LoggerModule builds the request logger once; the router and every component share
// its handler, and it becomes the slog default.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		newRequestLogger,
		newAppLogger,
	),
)

// FxEventLogger sends fx lifecycle events through the app logger at debug level.
var FxEventLogger = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
})

func newRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func newAppLogger(rl *middleware.Logger) *slog.Logger {
	return rl.GetSlogLogger().With("service", serviceName)
}
