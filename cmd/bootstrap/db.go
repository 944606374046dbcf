package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dryclean-api/internal/infra/db"
	"dryclean-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db", fx.Provide(NewDB))

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool", "acquired", stat.AcquiredConns(), "total", stat.TotalConns())
		closePool()
	}))
	return pool, nil
}
