package queries

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

// CatalogQueries is the only way to obtain a price snapshot. It never fails: store
// errors degrade to the built-in defaults.
type CatalogQueries interface {
	Current(ctx context.Context) *catalog.PriceCatalog
	// Reload drops the cached copy before reading.
	Reload(ctx context.Context) *catalog.PriceCatalog
	View(ctx context.Context) *CatalogView
}

type PriceReadStore interface {
	ListOverrides(ctx context.Context) ([]catalog.Override, error)
}

type catalogQueriesImpl struct {
	store    PriceReadStore
	cache    shared.CatalogCache
	defaults *catalog.PriceCatalog
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewCatalogQueries(store PriceReadStore, cache shared.CatalogCache, m *metrics.Metrics, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{
		store:    store,
		cache:    cache,
		defaults: catalog.Default(),
		metrics:  m,
		logger:   logger,
	}
}

func (q *catalogQueriesImpl) Current(ctx context.Context) *catalog.PriceCatalog {
	if overrides, ok := q.fromCache(ctx); ok {
		return catalog.Load(q.defaults, overrides)
	}

	overrides, err := q.store.ListOverrides(ctx)
	if err != nil {
		q.logger.Warn("price catalog unavailable, using defaults", "error", err.Error())
		return q.defaults
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, overrides); err != nil {
			q.logger.Warn("failed to cache price catalog", "error", err.Error())
		}
	}
	return catalog.Load(q.defaults, overrides)
}

func (q *catalogQueriesImpl) Reload(ctx context.Context) *catalog.PriceCatalog {
	if q.cache != nil {
		if err := q.cache.Invalidate(ctx); err != nil {
			q.logger.Warn("failed to invalidate price catalog cache", "error", err.Error())
		}
	}
	return q.Current(ctx)
}

func (q *catalogQueriesImpl) View(ctx context.Context) *CatalogView {
	return NewCatalogView(q.Current(ctx))
}

func (q *catalogQueriesImpl) fromCache(ctx context.Context) ([]catalog.Override, bool) {
	if q.cache == nil {
		return nil, false
	}
	overrides, ok, err := q.cache.Get(ctx)
	switch {
	case err != nil:
		q.metrics.CacheResult("error")
		q.logger.Warn("price catalog cache read failed", "error", err.Error())
		return nil, false
	case !ok:
		q.metrics.CacheResult("miss")
		return nil, false
	default:
		q.metrics.CacheResult("hit")
		return overrides, true
	}
}

// NewCatalogView lists products and services in display order. ServiceNone is left
// out since it is never priced.
func NewCatalogView(c *catalog.PriceCatalog) *CatalogView {
	v := &CatalogView{
		Products: make([]PriceItemView, 0, len(catalog.Products())),
		Services: make([]PriceItemView, 0, len(catalog.Services())),
		BagPrice: c.BagPrice(),
	}
	for _, k := range catalog.Products() {
		v.Products = append(v.Products, PriceItemView{Key: k.String(), Label: k.Label(), Price: c.ProductPrice(k)})
	}
	for _, k := range catalog.Services() {
		if k == catalog.ServiceNone {
			continue
		}
		v.Services = append(v.Services, PriceItemView{Key: k.String(), Label: k.Label(), Price: c.ServiceSurcharge(k)})
	}
	return v
}
