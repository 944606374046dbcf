package commands

import (
	"context"
	"strings"
	"time"

	"dryclean-api/internal/domain/resetcode"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=reset_code.go -destination=../../../tests/mock/commands/reset_code.go -package=commandsmock

// ResetCodeService owns the single-use code lifecycle. Issuing never revokes earlier
// codes; each stays valid until used or expired.
type ResetCodeService interface {
	Issue(ctx context.Context, customerID int64) (string, error)
	// VerifyAndConsume reports whether code was usable and marks it used in the same
	// transaction. A code is accepted at most once.
	VerifyAndConsume(ctx context.Context, customerID int64, code string) (bool, error)
}

type resetCodeServiceImpl struct {
	uow       shared.UnitOfWork
	generator resetcode.Generator
	clock     clock.Clock
	ttl       time.Duration
	metrics   *metrics.Metrics
}

func NewResetCodeService(uow shared.UnitOfWork, gen resetcode.Generator, clk clock.Clock, ttl time.Duration, m *metrics.Metrics) ResetCodeService {
	if ttl <= 0 {
		ttl = resetcode.DefaultTTL
	}
	return &resetCodeServiceImpl{uow: uow, generator: gen, clock: clk, ttl: ttl, metrics: m}
}

func (s *resetCodeServiceImpl) Issue(ctx context.Context, customerID int64) (string, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return "", errs.Wrap(err, "generate reset code")
	}
	rc, err := resetcode.NewResetCode(customerID, code, s.clock.Now(), s.ttl)
	if err != nil {
		return "", errs.Wrap(err, "build reset code")
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.ResetCodes().Create(ctx, tx.DB(), rc)
		return cerr
	})
	if err != nil {
		return "", err
	}

	s.metrics.ResetCode("issued")
	return code, nil
}

func (s *resetCodeServiceImpl) VerifyAndConsume(ctx context.Context, customerID int64, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if !resetcode.IsWellFormed(code) {
		s.metrics.ResetCode("rejected")
		return false, nil
	}

	var ok bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok = false
		rc, err := tx.ResetCodes().FindValidForUpdate(ctx, tx.DB(), customerID, code, s.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		marked, err := tx.ResetCodes().MarkUsed(ctx, tx.DB(), rc.ID())
		if err != nil {
			return err
		}
		ok = marked
		return nil
	})
	if err != nil {
		return false, err
	}

	if ok {
		s.metrics.ResetCode("verified")
	} else {
		s.metrics.ResetCode("rejected")
	}
	return ok, nil
}
