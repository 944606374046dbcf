package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=command_reads.go -destination=../../../tests/mock/readstore/command_reads.go -package=readstoremock

type CommandReadQueries interface {
	FindCustomerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	FindCustomerByPhone(ctx context.Context, db sqlc.DBTX, phone pgtype.Text) (sqlc.Customers, error)
	FindBranchByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error)
}

// CommandReadStore serves the write side's validation lookups. Bound to a tx it reads
// inside that transaction.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX, logger *slog.Logger) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CommandReadStore) CustomerByID(ctx context.Context, id int64) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find customer", err)
	}
	return toCustomerSnapshot(row), nil
}

// CustomerByEmail matches case-insensitively.
func (r *CommandReadStore) CustomerByEmail(ctx context.Context, email string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.FindCustomerByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find customer by email", err)
	}
	return toCustomerSnapshot(row), nil
}

func (r *CommandReadStore) CustomerByPhone(ctx context.Context, phone string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.FindCustomerByPhone(ctx, r.db, pgconv.StringToPgtype(phone))
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find customer by phone", err)
	}
	return toCustomerSnapshot(row), nil
}

func (r *CommandReadStore) BranchByID(ctx context.Context, id int64) (*shared.BranchSnapshot, error) {
	row, err := r.queries.FindBranchByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find branch", err)
	}
	return &shared.BranchSnapshot{
		ID:     row.ID,
		Name:   row.Name,
		City:   row.City,
		Active: row.Active,
	}, nil
}

func toCustomerSnapshot(row sqlc.Customers) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        pgconv.StringPtrFromPgtype(row.Email),
		Phone:        pgconv.StringPtrFromPgtype(row.Phone),
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
	}
}
