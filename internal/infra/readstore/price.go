package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/infra/repository"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=price.go -destination=../../../tests/mock/readstore/price.go -package=readstoremock

type PriceReadQueries interface {
	ListPriceSettings(ctx context.Context, db sqlc.DBTX) ([]sqlc.PriceSettings, error)
}

type PriceReadStore struct {
	queries PriceReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewPriceReadStore(queries PriceReadQueries, db sqlc.DBTX, logger *slog.Logger) *PriceReadStore {
	return &PriceReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *PriceReadStore) ListOverrides(ctx context.Context) ([]catalog.Override, error) {
	rows, err := r.queries.ListPriceSettings(ctx, r.db)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list price settings", err)
	}
	return repository.OverridesFromRows(rows, r.logger), nil
}
