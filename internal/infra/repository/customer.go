package repository

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/repository/customer.go -package=repositorymock

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) (int64, error)
	UpdateCustomerPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerPasswordParams) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	logger  *slog.Logger
}

func NewCustomerRepository(queries CustomerWriteQueries, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error) {
	params := sqlc.CreateCustomerParams{
		FullName:     c.FullName(),
		PasswordHash: c.PasswordHash(),
		Role:         c.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt()),
	}
	if c.Email() != nil {
		params.Email = pgtype.Text{String: c.Email().Value(), Valid: true}
	}
	if c.Phone() != nil {
		params.Phone = pgtype.Text{String: c.Phone().Value(), Valid: true}
	}

	id, err := r.queries.CreateCustomer(ctx, tx, params)
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) UpdatePasswordHash(ctx context.Context, tx sqlc.DBTX, id int64, hash string) error {
	n, err := r.queries.UpdateCustomerPassword(ctx, tx, sqlc.UpdateCustomerPasswordParams{
		ID:           id,
		PasswordHash: hash,
	})
	if err != nil {
		return infra.RepoErr(r.logger, "failed to update password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "customer not found", nil)
	}
	return nil
}
