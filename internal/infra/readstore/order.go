package readstore

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order.go -package=readstoremock

type OrderReadQueries interface {
	ListOrdersForCustomer(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.ListOrdersForCustomerRow, error)
	ListOrdersPaged(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersPagedParams) ([]sqlc.ListOrdersPagedRow, error)
	CountOrders(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountCustomers(ctx context.Context, db sqlc.DBTX) (int64, error)
	SumOrderTotals(ctx context.Context, db sqlc.DBTX) (pgtype.Numeric, error)
	TrackOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.TrackOrderParams) (sqlc.TrackOrderRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX, logger *slog.Logger) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// ListForCustomer returns the customer's orders newest first.
func (r *OrderReadStore) ListForCustomer(ctx context.Context, customerID int64) ([]*queries.CustomerOrderView, error) {
	rows, err := r.queries.ListOrdersForCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list customer orders", err)
	}

	out := make([]*queries.CustomerOrderView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.CustomerOrderView{
			ID:            row.ID,
			BranchName:    row.BranchName,
			BranchCity:    row.BranchCity,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Description:   row.Description,
			Total:         moneyFromNumeric(row.Total, r.logger),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *OrderReadStore) ListPaged(ctx context.Context, db sqlc.DBTX, limit, offset int) ([]*queries.AdminOrderView, error) {
	rows, err := r.queries.ListOrdersPaged(ctx, db, sqlc.ListOrdersPagedParams{
		Limit:  pgconv.IntToInt32(limit),
		Offset: pgconv.IntToInt32(offset),
	})
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to list orders", err)
	}

	out := make([]*queries.AdminOrderView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.AdminOrderView{
			ID:            row.ID,
			CustomerName:  row.CustomerName,
			CustomerPhone: pgconv.StringPtrFromPgtype(row.CustomerPhone),
			BranchName:    row.BranchName,
			BranchCity:    row.BranchCity,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Description:   row.Description,
			Total:         moneyFromNumeric(row.Total, r.logger),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *OrderReadStore) Count(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountOrders(ctx, db)
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to count orders", err)
	}
	return n, nil
}

func (r *OrderReadStore) CountCustomers(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountCustomers(ctx, db)
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to count customers", err)
	}
	return n, nil
}

// Revenue is the sum of every stored order total, in kuruş.
func (r *OrderReadStore) Revenue(ctx context.Context, db sqlc.DBTX) (int64, error) {
	sum, err := r.queries.SumOrderTotals(ctx, db)
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to sum order totals", err)
	}
	amount, err := pgconv.NumericToDecimal(sum)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "unreadable revenue", err)
	}
	return catalog.FromDecimal(amount).Kurus(), nil
}

// Track matches on every criterion given and returns the newest hit.
func (r *OrderReadStore) Track(ctx context.Context, orderID *int64, phone *string) (*queries.TrackedOrderView, error) {
	row, err := r.queries.TrackOrder(ctx, r.db, sqlc.TrackOrderParams{
		OrderID: pgconv.Int64PtrToPgtype(orderID),
		Phone:   pgconv.StringPtrToPgtype(phone),
	})
	if err != nil {
		return nil, infra.RepoErr(r.logger, "failed to track order", err)
	}
	return &queries.TrackedOrderView{
		ID:          row.ID,
		BranchName:  row.BranchName,
		BranchCity:  row.BranchCity,
		Status:      row.Status,
		Description: row.Description,
		Total:       moneyFromNumeric(row.Total, r.logger),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
