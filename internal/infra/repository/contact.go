package repository

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/contact"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
)

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/repository/contact.go -package=repositorymock

type ContactWriteQueries interface {
	CreateContactMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateContactMessageParams) (int64, error)
}

type ContactRepository struct {
	queries ContactWriteQueries
	logger  *slog.Logger
}

func NewContactRepository(queries ContactWriteQueries, logger *slog.Logger) *ContactRepository {
	return &ContactRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *ContactRepository) Create(ctx context.Context, tx sqlc.DBTX, msg *contact.Message) (int64, error) {
	id, err := r.queries.CreateContactMessage(ctx, tx, sqlc.CreateContactMessageParams{
		Name:      pgconv.StringPtrToPgtype(msg.Name()),
		Email:     pgconv.StringPtrToPgtype(msg.Email()),
		Message:   msg.Body(),
		CreatedAt: pgconv.TimeToPgtype(msg.CreatedAt()),
	})
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to store contact message", err)
	}
	return id, nil
}
