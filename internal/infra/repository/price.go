package repository

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
)

//go:generate mockgen -source=price.go -destination=../../../tests/mock/repository/price.go -package=repositorymock

type PriceWriteQueries interface {
	ListPriceSettings(ctx context.Context, db sqlc.DBTX) ([]sqlc.PriceSettings, error)
	UpsertPriceSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPriceSettingParams) error
}

type PriceRepository struct {
	queries PriceWriteQueries
	logger  *slog.Logger
}

func NewPriceRepository(queries PriceWriteQueries, logger *slog.Logger) *PriceRepository {
	return &PriceRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *PriceRepository) LoadOverrides(ctx context.Context, tx sqlc.DBTX) ([]catalog.Override, error) {
	rows, err := r.queries.ListPriceSettings(ctx, tx)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list price settings", err)
	}
	return OverridesFromRows(rows, r.logger), nil
}

func (r *PriceRepository) SaveAll(ctx context.Context, tx sqlc.DBTX, overrides []catalog.Override) error {
	for _, o := range overrides {
		err := r.queries.UpsertPriceSetting(ctx, tx, sqlc.UpsertPriceSettingParams{
			Category: string(o.Category),
			Key:      o.Key,
			Value:    pgconv.DecimalToNumeric(o.Value.Decimal()),
		})
		if err != nil {
			return infra.RepoErr(r.logger, "failed to upsert price setting", err)
		}
	}
	return nil
}

// OverridesFromRows drops rows whose value cannot be represented.
func OverridesFromRows(rows []sqlc.PriceSettings, logger *slog.Logger) []catalog.Override {
	out := make([]catalog.Override, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.NumericToDecimal(row.Value)
		if err != nil {
			logger.Warn("skipping unreadable price setting", "category", row.Category, "key", row.Key, "error", err.Error())
			continue
		}
		out = append(out, catalog.Override{
			Category: catalog.Category(row.Category),
			Key:      row.Key,
			Value:    catalog.FromDecimal(amount),
		})
	}
	return out
}
