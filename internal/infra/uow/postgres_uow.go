package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dryclean-api/internal/infra/readstore"
	"dryclean-api/internal/infra/repository"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const defaultRetryBase = 100 * time.Millisecond

// Repositories are stateless over sqlc.DBTX, so one set serves every transaction.
type repositories struct {
	orders     shared.OrderRepository
	branches   shared.BranchRepository
	customers  shared.CustomerRepository
	prices     shared.PriceRepository
	resetCodes shared.ResetCodeRepository
	contacts   shared.ContactRepository
}

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	repos      repositories
	maxRetries uint64
	retryBase  time.Duration
	logger     *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, logger *slog.Logger) shared.UnitOfWork {
	base := cfg.DB.TxRetryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	return &PostgresUoW{
		pool: pool,
		q:    q,
		repos: repositories{
			orders:     repository.NewOrderRepository(q, logger),
			branches:   repository.NewBranchRepository(q, logger),
			customers:  repository.NewCustomerRepository(q, logger),
			prices:     repository.NewPriceRepository(q, logger),
			resetCodes: repository.NewResetCodeRepository(q, logger),
			contacts:   repository.NewContactRepository(q, logger),
		},
		maxRetries: cfg.DB.TxMaxRetries,
		retryBase:  base,
		logger:     logger,
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = u.retryBase
	policy.Multiplier = 2
	policy.RandomizationFactor = 0.2
	policy.MaxElapsedTime = 0

	attempt := 0
	exhausted := false
	err := backoff.RetryNotify(
		func() error {
			attempt++
			err := u.attempt(ctx, fn)
			if err == nil || !isRetryable(err) {
				return backoff.Permanent(err)
			}
			exhausted = uint64(attempt) > u.maxRetries
			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(policy, u.maxRetries), ctx),
		func(err error, wait time.Duration) {
			u.logger.Warn("retrying transaction", "attempt", attempt, "wait_ms", wait.Milliseconds(), "error", err.Error())
		},
	)
	if err != nil && exhausted && isRetryable(err) {
		u.logger.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt runs one transaction; its rollback is not deferred so retries never stack them.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("read-only rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.q, u.pool, u.logger)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

type pgTx struct {
	dbtx  sqlc.DBTX
	uow   *PostgresUoW
	reads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Orders() shared.OrderRepository         { return t.uow.repos.orders }
func (t *pgTx) Branches() shared.BranchRepository      { return t.uow.repos.branches }
func (t *pgTx) Customers() shared.CustomerRepository   { return t.uow.repos.customers }
func (t *pgTx) Prices() shared.PriceRepository         { return t.uow.repos.prices }
func (t *pgTx) ResetCodes() shared.ResetCodeRepository { return t.uow.repos.resetCodes }
func (t *pgTx) Contacts() shared.ContactRepository     { return t.uow.repos.contacts }

// Reads sees this transaction's uncommitted writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = readstore.NewCommandReadStore(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.reads
}
