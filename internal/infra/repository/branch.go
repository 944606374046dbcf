package repository

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/branch"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
)

//go:generate mockgen -source=branch.go -destination=../../../tests/mock/repository/branch.go -package=repositorymock

type BranchWriteQueries interface {
	CreateBranch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBranchParams) (int64, error)
	UpdateBranch(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBranchParams) (int64, error)
	DeactivateBranch(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	FindBranchByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error)
	FindActiveBranchByCityName(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveBranchByCityNameParams) (sqlc.Branches, error)
}

type BranchRepository struct {
	queries BranchWriteQueries
	logger  *slog.Logger
}

func NewBranchRepository(queries BranchWriteQueries, logger *slog.Logger) *BranchRepository {
	return &BranchRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *BranchRepository) Create(ctx context.Context, tx sqlc.DBTX, b *branch.Branch) (int64, error) {
	id, err := r.queries.CreateBranch(ctx, tx, sqlc.CreateBranchParams{
		Name:    b.Name(),
		City:    b.City(),
		Address: pgconv.StringPtrToPgtype(b.Address()),
		Phone:   pgconv.StringPtrToPgtype(b.Phone()),
		Active:  b.IsActive(),
	})
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to create branch", err)
	}
	return id, nil
}

func (r *BranchRepository) Update(ctx context.Context, tx sqlc.DBTX, b *branch.Branch) error {
	n, err := r.queries.UpdateBranch(ctx, tx, sqlc.UpdateBranchParams{
		ID:      b.ID(),
		Name:    b.Name(),
		City:    b.City(),
		Address: pgconv.StringPtrToPgtype(b.Address()),
		Phone:   pgconv.StringPtrToPgtype(b.Phone()),
		Active:  b.IsActive(),
	})
	if err != nil {
		return infra.RepoErr(r.logger, "failed to update branch", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "branch not found", nil)
	}
	return nil
}

func (r *BranchRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeactivateBranch(ctx, tx, id)
	if err != nil {
		return infra.RepoErr(r.logger, "failed to deactivate branch", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "branch not found", nil)
	}
	return nil
}

func (r *BranchRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*branch.Branch, error) {
	row, err := r.queries.FindBranchByID(ctx, tx, id)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find branch", err)
	}
	return branchFromRow(row), nil
}

func (r *BranchRepository) FindActiveByCityName(ctx context.Context, tx sqlc.DBTX, city, name string) (*branch.Branch, error) {
	row, err := r.queries.FindActiveBranchByCityName(ctx, tx, sqlc.FindActiveBranchByCityNameParams{
		City: city,
		Name: name,
	})
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find branch by city and name", err)
	}
	return branchFromRow(row), nil
}

func branchFromRow(row sqlc.Branches) *branch.Branch {
	return branch.ReconstructBranch(
		row.ID,
		row.Name,
		row.City,
		pgconv.StringPtrFromPgtype(row.Address),
		pgconv.StringPtrFromPgtype(row.Phone),
		row.Active,
	)
}
