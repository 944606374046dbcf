package queries

import (
	"context"

	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/errs"
)

//go:generate mockgen -source=branch.go -destination=../../../tests/mock/queries/branch.go -package=queriesmock

var ErrBranchNotFound = errs.New("branch not found")

type BranchQueries interface {
	ListActive(ctx context.Context) ([]*BranchView, error)
	ListAll(ctx context.Context) ([]*BranchView, error)
	Get(ctx context.Context, id int64) (*BranchView, error)
}

type BranchReadStore interface {
	ListActive(ctx context.Context) ([]*BranchView, error)
	ListAll(ctx context.Context) ([]*BranchView, error)
	FindByID(ctx context.Context, id int64) (*BranchView, error)
}

type branchQueriesImpl struct {
	store BranchReadStore
}

func NewBranchQueries(store BranchReadStore) BranchQueries {
	return &branchQueriesImpl{store: store}
}

func (q *branchQueriesImpl) ListActive(ctx context.Context) ([]*BranchView, error) {
	return q.store.ListActive(ctx)
}

func (q *branchQueriesImpl) ListAll(ctx context.Context) ([]*BranchView, error) {
	return q.store.ListAll(ctx)
}

func (q *branchQueriesImpl) Get(ctx context.Context, id int64) (*BranchView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return b, nil
}
