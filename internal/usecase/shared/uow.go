package shared

import (
	"context"
	"time"

	"dryclean-api/internal/domain/branch"
	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/contact"
	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/domain/resetcode"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly gives fn one snapshot across several reads, e.g. the dashboard counters.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads serves validation lookups outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Branches() BranchRepository
	Customers() CustomerRepository
	Prices() PriceRepository
	ResetCodes() ResetCodeRepository
	Contacts() ContactRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are lookups the write side needs for validation.
type CommandReads interface {
	CustomerByID(ctx context.Context, id int64) (*CustomerSnapshot, error)
	CustomerByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	CustomerByPhone(ctx context.Context, phone string) (*CustomerSnapshot, error)
	BranchByID(ctx context.Context, id int64) (*BranchSnapshot, error)
}

type OrderRepository interface {
	// Create inserts the order and one item row per priced line.
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error)
	// StatusForUpdate locks the order row and returns its stored status.
	StatusForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (string, error)
	SetStatus(ctx context.Context, tx sqlc.DBTX, orderID int64, status order.Status) error
}

type BranchRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *branch.Branch) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *branch.Branch) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, id int64) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*branch.Branch, error)
	FindActiveByCityName(ctx context.Context, tx sqlc.DBTX, city, name string) (*branch.Branch, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (int64, error)
	UpdatePasswordHash(ctx context.Context, tx sqlc.DBTX, id int64, hash string) error
}

type PriceRepository interface {
	LoadOverrides(ctx context.Context, tx sqlc.DBTX) ([]catalog.Override, error)
	// SaveAll upserts every triple; nothing is ever deleted.
	SaveAll(ctx context.Context, tx sqlc.DBTX, overrides []catalog.Override) error
}

type ResetCodeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rc *resetcode.ResetCode) (int64, error)
	// FindValidForUpdate returns the newest unused, unexpired match and locks it.
	FindValidForUpdate(ctx context.Context, tx sqlc.DBTX, customerID int64, code string, now time.Time) (*resetcode.ResetCode, error)
	// MarkUsed reports false when the row was already consumed.
	MarkUsed(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error)
}

type ContactRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, msg *contact.Message) (int64, error)
}
