//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dryclean-api/internal/infra"
	"dryclean-api/internal/usecase/shared"
	sharedmock "dryclean-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var errNotFound = infra.RepositoryError{Kind: infra.KindNotFound}

// txHarness runs every Within callback against one mocked transaction.
type txHarness struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	orders    *sharedmock.MockOrderRepository
	branches  *sharedmock.MockBranchRepository
	customers *sharedmock.MockCustomerRepository
	prices    *sharedmock.MockPriceRepository
	codes     *sharedmock.MockResetCodeRepository
	contacts  *sharedmock.MockContactRepository
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		orders:    sharedmock.NewMockOrderRepository(ctrl),
		branches:  sharedmock.NewMockBranchRepository(ctrl),
		customers: sharedmock.NewMockCustomerRepository(ctrl),
		prices:    sharedmock.NewMockPriceRepository(ctrl),
		codes:     sharedmock.NewMockResetCodeRepository(ctrl),
		contacts:  sharedmock.NewMockContactRepository(ctrl),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Orders().Return(h.orders).AnyTimes()
	h.tx.EXPECT().Branches().Return(h.branches).AnyTimes()
	h.tx.EXPECT().Customers().Return(h.customers).AnyTimes()
	h.tx.EXPECT().Prices().Return(h.prices).AnyTimes()
	h.tx.EXPECT().ResetCodes().Return(h.codes).AnyTimes()
	h.tx.EXPECT().Contacts().Return(h.contacts).AnyTimes()
	return h
}

func discardLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
