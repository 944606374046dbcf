package bootstrap

import (
	"context"
	"log/slog"

	"dryclean-api/internal/infra/cache"
	"dryclean-api/internal/infra/events"
	"dryclean-api/internal/infra/mail"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationsModule provides the optional outside services. Each one falls back
// to a local stand-in when its address is not configured.
var IntegrationsModule = fx.Module("integrations",
	fx.Provide(
		metrics.New,
		NewCatalogCache,
		NewOrderEventPublisher,
		NewMailer,
	),
)

// NewCatalogCache returns nil without Redis; catalog queries then read the database every time.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.CatalogCache {
	if !cfg.Redis.Enabled() {
		logger.Info("redis not configured, price catalog cache disabled")
		return nil
	}

	client := cache.NewClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, cache reads will fall back to the database", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisCatalogCache(client, cfg.Redis.PriceTTL, logger)
}

func NewOrderEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.OrderEventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka not configured, order events go to the log")
		return events.NewLogPublisher(logger)
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka), logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewMailer(cfg config.Config, logger *slog.Logger) shared.Mailer {
	if !cfg.SMTP.Enabled() {
		logger.Warn("smtp not configured, reset codes are only logged")
		return mail.NewLogMailer(logger)
	}
	return mail.NewSMTPMailer(cfg.SMTP, logger)
}
