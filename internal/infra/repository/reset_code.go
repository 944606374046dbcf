package repository

import (
	"context"
	"log/slog"
	"time"

	"dryclean-api/internal/domain/resetcode"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
)

//go:generate mockgen -source=reset_code.go -destination=../../../tests/mock/repository/reset_code.go -package=repositorymock

type ResetCodeWriteQueries interface {
	CreateResetCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResetCodeParams) (int64, error)
	FindValidResetCode(ctx context.Context, db sqlc.DBTX, arg sqlc.FindValidResetCodeParams) (sqlc.ResetCodes, error)
	MarkResetCodeUsed(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ResetCodeRepository struct {
	queries ResetCodeWriteQueries
	logger  *slog.Logger
}

func NewResetCodeRepository(queries ResetCodeWriteQueries, logger *slog.Logger) *ResetCodeRepository {
	return &ResetCodeRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *ResetCodeRepository) Create(ctx context.Context, tx sqlc.DBTX, rc *resetcode.ResetCode) (int64, error) {
	id, err := r.queries.CreateResetCode(ctx, tx, sqlc.CreateResetCodeParams{
		CustomerID: rc.CustomerID(),
		Code:       rc.Code(),
		ExpiresAt:  pgconv.TimeToPgtype(rc.ExpiresAt()),
		CreatedAt:  pgconv.TimeToPgtype(rc.CreatedAt()),
	})
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to create reset code", err)
	}
	return id, nil
}

func (r *ResetCodeRepository) FindValidForUpdate(ctx context.Context, tx sqlc.DBTX, customerID int64, code string, now time.Time) (*resetcode.ResetCode, error) {
	row, err := r.queries.FindValidResetCode(ctx, tx, sqlc.FindValidResetCodeParams{
		CustomerID: customerID,
		Code:       code,
		Now:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find reset code", err)
	}
	return resetcode.ReconstructResetCode(
		row.ID,
		row.CustomerID,
		row.Code,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.Used,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func (r *ResetCodeRepository) MarkUsed(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error) {
	n, err := r.queries.MarkResetCodeUsed(ctx, tx, id)
	if err != nil {
		return false, infra.RepoErr(r.logger, "failed to mark reset code used", err)
	}
	return n == 1, nil
}
