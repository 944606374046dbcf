package repository

import (
	"context"
	"log/slog"

	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/infra"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error)
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderStatusForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (string, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	logger  *slog.Logger
}

func NewOrderRepository(queries OrderWriteQueries, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		logger:  logger,
	}
}

// Create inserts the order row followed by one item row per priced line.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error) {
	id, err := r.queries.CreateOrder(ctx, tx, sqlc.CreateOrderParams{
		CustomerID:    o.CustomerID(),
		BranchID:      o.BranchID(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod(),
		Description:   o.Description(),
		Total:         pgconv.DecimalToNumeric(o.Total().Decimal()),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	})
	if err != nil {
		return 0, infra.RepoErr(r.logger, "failed to create order", err)
	}

	for _, l := range o.Lines() {
		err := r.queries.CreateOrderItem(ctx, tx, sqlc.CreateOrderItemParams{
			OrderID:    id,
			ProductKey: l.Product.String(),
			ServiceKey: l.Service.String(),
			Quantity:   pgconv.IntToInt32(l.Quantity),
			UnitPrice:  pgconv.DecimalToNumeric(l.UnitPrice.Decimal()),
			Subtotal:   pgconv.DecimalToNumeric(l.Subtotal.Decimal()),
		})
		if err != nil {
			return 0, infra.RepoErr(r.logger, "failed to create order item", err)
		}
	}

	return id, nil
}

func (r *OrderRepository) StatusForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (string, error) {
	status, err := r.queries.GetOrderStatusForUpdate(ctx, tx, orderID)
	if err != nil {
		return "", infra.RepoErr(r.logger, "failed to lock order", err)
	}
	return status, nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, tx sqlc.DBTX, orderID int64, status order.Status) error {
	n, err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		ID:     orderID,
		Status: status.String(),
	})
	if err != nil {
		return infra.RepoErr(r.logger, "failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "order not found", nil)
	}
	return nil
}
