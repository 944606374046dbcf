package queries

import (
	"context"
)

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/queries/contact.go -package=queriesmock

type ContactQueries interface {
	List(ctx context.Context) ([]*ContactMessageView, error)
}

type ContactReadStore interface {
	List(ctx context.Context) ([]*ContactMessageView, error)
}

type contactQueriesImpl struct {
	store ContactReadStore
}

func NewContactQueries(store ContactReadStore) ContactQueries {
	return &contactQueriesImpl{store: store}
}

func (q *contactQueriesImpl) List(ctx context.Context) ([]*ContactMessageView, error) {
	return q.store.List(ctx)
}
