package commands

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/usecase/queries"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/commands/pricing.go -package=commandsmock

type UpdatePricesResult struct {
	Catalog  *queries.CatalogView
	Rejected []string
}

type PriceCommands interface {
	// UpdatePrices applies every parsable field; rejected keys are reported, not fatal.
	UpdatePrices(ctx context.Context, u catalog.Update) (*UpdatePricesResult, error)
}

type priceCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog queries.CatalogQueries
	logger  *slog.Logger
}

func NewPriceCommands(uow shared.UnitOfWork, catalogQueries queries.CatalogQueries, logger *slog.Logger) PriceCommands {
	return &priceCommandsImpl{uow: uow, catalog: catalogQueries, logger: logger}
}

func (uc *priceCommandsImpl) UpdatePrices(ctx context.Context, u catalog.Update) (*UpdatePricesResult, error) {
	var rejected []string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overrides, err := tx.Prices().LoadOverrides(ctx, tx.DB())
		if err != nil {
			return err
		}
		current := catalog.Load(catalog.Default(), overrides)

		var next *catalog.PriceCatalog
		next, rejected = current.Apply(u)
		return tx.Prices().SaveAll(ctx, tx.DB(), next.Overrides())
	})
	if err != nil {
		return nil, err
	}

	if len(rejected) > 0 {
		uc.logger.Warn("price update skipped unparsable fields", "fields", rejected)
	}

	return &UpdatePricesResult{
		Catalog:  queries.NewCatalogView(uc.catalog.Reload(ctx)),
		Rejected: rejected,
	}, nil
}
