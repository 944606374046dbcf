//go:build unit

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/infra/repository"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	"dryclean-api/tests/common/builder"
	repositorymock "dryclean-api/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderRepository_Create(t *testing.T) {
	o, err := builder.NewOrderBuilder().
		WithLines(
			order.LineRequest{Product: catalog.ProductShirt, Quantity: "2", Service: catalog.ServiceWashDry},
			order.LineRequest{Product: catalog.ProductCoat, Quantity: "1", Service: catalog.ServiceWash},
		).
		BuildDomain()
	require.NoError(t, err)

	t.Run("writes the order then one row per line", func(t *testing.T) {
		q := repositorymock.NewMockOrderWriteQueries(gomock.NewController(t))

		q.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error) {
				assert.Equal(t, "ALINDI", arg.Status)
				total, err := pgconv.NumericToDecimal(arg.Total)
				assert.NoError(t, err)
				assert.True(t, o.Total().Decimal().Equal(total), "total %s", total)
				return 21, nil
			})

		var items []sqlc.CreateOrderItemParams
		q.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
				items = append(items, arg)
				return nil
			}).Times(2)

		id, err := repository.NewOrderRepository(q, discardLogger()).Create(context.Background(), nil, o)

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
		require.Len(t, items, 2)
		assert.Equal(t, int64(21), items[0].OrderID)
		assert.Equal(t, "gomlek", items[0].ProductKey)
		assert.Equal(t, int32(2), items[0].Quantity)
		assert.Equal(t, "mont", items[1].ProductKey)
		assert.Equal(t, "yikama", items[1].ServiceKey)
	})

	t.Run("ServiceNone lines never reach the item table", func(t *testing.T) {
		partial, err := builder.NewOrderBuilder().
			WithLines(
				order.LineRequest{Product: catalog.ProductShirt, Quantity: "2", Service: catalog.ServiceWashDry},
				order.LineRequest{Product: catalog.ProductCoat, Quantity: "1", Service: catalog.ServiceNone},
			).
			BuildDomain()
		require.NoError(t, err)

		q := repositorymock.NewMockOrderWriteQueries(gomock.NewController(t))
		q.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(22), nil)
		q.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
				assert.Equal(t, "gomlek", arg.ProductKey)
				return nil
			}).Times(1)

		_, err = repository.NewOrderRepository(q, discardLogger()).Create(context.Background(), nil, partial)
		require.NoError(t, err)
	})

	t.Run("item failure is a db failure", func(t *testing.T) {
		q := repositorymock.NewMockOrderWriteQueries(gomock.NewController(t))
		q.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(21), nil)
		q.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := repository.NewOrderRepository(q, discardLogger()).Create(context.Background(), nil, o)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_Status(t *testing.T) {
	t.Run("lock on a missing order", func(t *testing.T) {
		q := repositorymock.NewMockOrderWriteQueries(gomock.NewController(t))
		q.EXPECT().GetOrderStatusForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return("", pgx.ErrNoRows)

		_, err := repository.NewOrderRepository(q, discardLogger()).StatusForUpdate(context.Background(), nil, 5)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	tests := []struct {
		name     string
		affected int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", affected: 1},
		{name: "no rows affected", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run("set status: "+tt.name, func(t *testing.T) {
			q := repositorymock.NewMockOrderWriteQueries(gomock.NewController(t))
			q.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), sqlc.UpdateOrderStatusParams{ID: 5, Status: "HAZIRLANIYOR"}).
				Return(tt.affected, tt.dbErr)

			err := repository.NewOrderRepository(q, discardLogger()).SetStatus(context.Background(), nil, 5, order.StatusPreparing)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}
