package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/internal/usecase/queries"
)

//go:generate mockgen -source=branch.go -destination=../../../tests/mock/readstore/branch.go -package=readstoremock

type BranchReadQueries interface {
	ListActiveBranches(ctx context.Context, db sqlc.DBTX) ([]sqlc.Branches, error)
	ListBranches(ctx context.Context, db sqlc.DBTX) ([]sqlc.Branches, error)
	FindBranchByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error)
}

type BranchReadStore struct {
	queries BranchReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBranchReadStore(queries BranchReadQueries, db sqlc.DBTX, logger *slog.Logger) *BranchReadStore {
	return &BranchReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BranchReadStore) ListActive(ctx context.Context) ([]*queries.BranchView, error) {
	rows, err := r.queries.ListActiveBranches(ctx, r.db)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list active branches", err)
	}
	return toBranchViews(rows), nil
}

func (r *BranchReadStore) ListAll(ctx context.Context) ([]*queries.BranchView, error) {
	rows, err := r.queries.ListBranches(ctx, r.db)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list branches", err)
	}
	return toBranchViews(rows), nil
}

func (r *BranchReadStore) FindByID(ctx context.Context, id int64) (*queries.BranchView, error) {
	row, err := r.queries.FindBranchByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to find branch", err)
	}
	return toBranchView(row), nil
}

func toBranchViews(rows []sqlc.Branches) []*queries.BranchView {
	out := make([]*queries.BranchView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBranchView(row))
	}
	return out
}

func toBranchView(row sqlc.Branches) *queries.BranchView {
	return &queries.BranchView{
		ID:        row.ID,
		Name:      row.Name,
		City:      row.City,
		Address:   pgconv.StringPtrFromPgtype(row.Address),
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Active:    row.Active,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
