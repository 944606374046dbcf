package commands

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/contact"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact.go -package=commandsmock

type ContactRequest struct {
	Name    string
	Email   string
	Message string
}

type ContactCommands interface {
	Submit(ctx context.Context, req ContactRequest) (int64, error)
}

type contactCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewContactCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *contactCommandsImpl) Submit(ctx context.Context, req ContactRequest) (int64, error) {
	msg, err := contact.NewMessage(req.Name, req.Email, req.Message, uc.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Contacts().Create(ctx, tx.DB(), msg)
		return cerr
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Info("contact message stored", "message_id", id)
	return id, nil
}
