package queries

import (
	"context"

	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/errs"
)

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer.go -package=queriesmock

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerQueries interface {
	GetCurrentCustomer(ctx context.Context, customerID int64) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id int64) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{
		readStore: readStore,
	}
}

func (q *customerQueriesImpl) GetCurrentCustomer(ctx context.Context, customerID int64) (*CustomerView, error) {
	c, err := q.readStore.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.readStore.List(ctx)
}
