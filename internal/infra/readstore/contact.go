package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/internal/usecase/queries"
)

type ContactReadQueries interface {
	ListContactMessages(ctx context.Context, db sqlc.DBTX) ([]sqlc.ContactMessages, error)
}

type ContactReadStore struct {
	queries ContactReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewContactReadStore(queries ContactReadQueries, db sqlc.DBTX, logger *slog.Logger) *ContactReadStore {
	return &ContactReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ContactReadStore) List(ctx context.Context) ([]*queries.ContactMessageView, error) {
	rows, err := r.queries.ListContactMessages(ctx, r.db)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list contact messages", err)
	}

	out := make([]*queries.ContactMessageView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.ContactMessageView{
			ID:        row.ID,
			Name:      pgconv.StringPtrFromPgtype(row.Name),
			Email:     pgconv.StringPtrFromPgtype(row.Email),
			Message:   row.Message,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
