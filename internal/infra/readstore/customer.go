package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/internal/usecase/queries"
)

type CustomerReadQueries interface {
	FindCustomerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	ListCustomers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCustomersRow, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX, logger *slog.Logger) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id int64) (*queries.CustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find customer", err)
	}
	return &queries.CustomerView{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list customers", err)
	}

	out := make([]*queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.CustomerView{
			ID:        row.ID,
			FullName:  row.FullName,
			Email:     pgconv.StringPtrFromPgtype(row.Email),
			Phone:     pgconv.StringPtrFromPgtype(row.Phone),
			Role:      row.Role,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
