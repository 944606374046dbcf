package commands

import (
	"context"

	"dryclean-api/internal/domain/branch"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=branch.go -destination=../../../tests/mock/commands/branch.go -package=commandsmock

type BranchRequest struct {
	Name    string
	City    string
	Address *string
	Phone   *string
	Active  bool
}

type BranchCommands interface {
	Create(ctx context.Context, req BranchRequest) (int64, error)
	Update(ctx context.Context, id int64, req BranchRequest) error
	// Deactivate hides the branch from checkout. Branches are never deleted.
	Deactivate(ctx context.Context, id int64) error
}

type branchCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBranchCommands(uow shared.UnitOfWork) BranchCommands {
	return &branchCommandsImpl{uow: uow}
}

func (uc *branchCommandsImpl) Create(ctx context.Context, req BranchRequest) (int64, error) {
	b, err := branch.NewBranch(req.Name, req.City, req.Address, req.Phone, req.Active)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Branches().Create(ctx, tx.DB(), b)
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *branchCommandsImpl) Update(ctx context.Context, id int64, req BranchRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Branches().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapBranchErr(err)
		}
		if err := b.Update(req.Name, req.City, req.Address, req.Phone, req.Active); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return mapBranchErr(tx.Branches().Update(ctx, tx.DB(), b))
	})
}

func (uc *branchCommandsImpl) Deactivate(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapBranchErr(tx.Branches().Deactivate(ctx, tx.DB(), id))
	})
}

func mapBranchErr(err error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return ErrBranchNotFound
	}
	return err
}
