package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	catalogKey      = "dryclean:price_catalog:v2"
	defaultCacheTTL = 5 * time.Minute
)

// Client is the subset of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type cachedOverride struct {
	Category string          `json:"category"`
	Key      string          `json:"key"`
	Value    decimal.Decimal `json:"value"`
}

// RedisCatalogCache keeps the persisted price overrides under a single key.
type RedisCatalogCache struct {
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCatalogCache(client Client, ttl time.Duration, logger *slog.Logger) *RedisCatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]catalog.Override, bool, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("price catalog cache miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "price catalog cache get")
	}

	var rows []cachedOverride
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, errs.Wrap(err, "price catalog cache decode")
	}

	out := make([]catalog.Override, 0, len(rows))
	for _, r := range rows {
		out = append(out, catalog.Override{
			Category: catalog.Category(r.Category),
			Key:      r.Key,
			Value:    catalog.FromDecimal(r.Value),
		})
	}
	return out, true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, overrides []catalog.Override) error {
	rows := make([]cachedOverride, 0, len(overrides))
	for _, o := range overrides {
		rows = append(rows, cachedOverride{
			Category: string(o.Category),
			Key:      o.Key,
			Value:    o.Value.Decimal(),
		})
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return errs.Wrap(err, "price catalog cache encode")
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "price catalog cache set")
	}

	c.logger.Debug("price catalog cached", "entries", len(rows), "ttl", c.ttl.String())
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return errs.Wrap(err, "price catalog cache delete")
	}
	return nil
}
