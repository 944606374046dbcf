package bootstrap

import (
	"dryclean-api/cmd/bootstrap/components"
	"dryclean-api/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once at startup; a missing JWT_SECRET aborts here.
var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

// Module wires the API process: config and logging first, then the pool, JWT and the
// Redis/Kafka/SMTP integrations, then repositories, usecases and HTTP handlers. The e2e
// harness supplies its own pool and config, so it lists the remaining modules itself.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxEventLogger,
	DBModule,
	JWTModule,
	IntegrationsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
