package components

import (
	"dryclean-api/internal/infra/readstore"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/infra/uow"
	"dryclean-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are not provided here: the unit of work owns them and hands them to each Tx.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Price
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PriceReadQueries)),
		),
		fx.Annotate(
			readstore.NewPriceReadStore,
			fx.As(new(queries.PriceReadStore)),
		),
		// Branch
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BranchReadQueries)),
		),
		fx.Annotate(
			readstore.NewBranchReadStore,
			fx.As(new(queries.BranchReadStore)),
		),
		// Customer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Contact
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ContactReadQueries)),
		),
		fx.Annotate(
			readstore.NewContactReadStore,
			fx.As(new(queries.ContactReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
