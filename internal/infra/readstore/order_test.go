//go:build unit

package readstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dryclean-api/internal/infra"
	"dryclean-api/internal/infra/readstore"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	readstoremock "dryclean-api/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderReadStore_ListPaged(t *testing.T) {
	created := time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC)
	q := readstoremock.NewMockOrderReadQueries(gomock.NewController(t))
	q.EXPECT().ListOrdersPaged(gomock.Any(), gomock.Any(), sqlc.ListOrdersPagedParams{Limit: 5, Offset: 10}).
		Return([]sqlc.ListOrdersPagedRow{
			{
				ID: 3, Status: "ALINDI", CustomerName: "Ayşe Yılmaz",
				CustomerPhone: pgtype.Text{String: "05551112233", Valid: true},
				Total:         pgconv.DecimalToNumeric(decimal.New(10050, -2)),
				CreatedAt:     pgconv.TimeToPgtype(created),
			},
			{ID: 4, Status: "ALINDI", Total: pgtype.Numeric{NaN: true, Valid: true}},
		}, nil)

	views, err := readstore.NewOrderReadStore(q, nil, discardLogger()).ListPaged(context.Background(), nil, 5, 10)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(10050), views[0].Total.Kurus())
	require.NotNil(t, views[0].CustomerPhone)
	assert.Equal(t, "05551112233", *views[0].CustomerPhone)
	assert.Equal(t, created, views[0].CreatedAt)
	assert.Nil(t, views[1].CustomerPhone)
	assert.True(t, views[1].Total.IsZero())
}

func TestOrderReadStore_Revenue(t *testing.T) {
	tests := []struct {
		name      string
		sum       pgtype.Numeric
		dbErr     error
		want      int64
		wantError bool
	}{
		{name: "sum", sum: pgconv.DecimalToNumeric(decimal.New(70350, -2)), want: 70350},
		{name: "no orders gives NULL", sum: pgtype.Numeric{}, want: 0},
		{name: "unreadable sum", sum: pgtype.Numeric{NaN: true, Valid: true}, wantError: true},
		{name: "database error", dbErr: assert.AnError, wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := readstoremock.NewMockOrderReadQueries(gomock.NewController(t))
			q.EXPECT().SumOrderTotals(gomock.Any(), gomock.Any()).Return(tt.sum, tt.dbErr)

			got, err := readstore.NewOrderReadStore(q, nil, discardLogger()).Revenue(context.Background(), nil)
			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderReadStore_Track(t *testing.T) {
	t.Run("optional criteria become NULL", func(t *testing.T) {
		id := int64(8)
		q := readstoremock.NewMockOrderReadQueries(gomock.NewController(t))
		q.EXPECT().TrackOrder(gomock.Any(), gomock.Any(), sqlc.TrackOrderParams{
			OrderID: pgtype.Int8{Int64: 8, Valid: true},
		}).Return(sqlc.TrackOrderRow{ID: 8, Status: "KURYE YOLDA", BranchName: "Moda"}, nil)

		v, err := readstore.NewOrderReadStore(q, nil, discardLogger()).Track(context.Background(), &id, nil)
		require.NoError(t, err)
		assert.Equal(t, "Moda", v.BranchName)
	})

	t.Run("no match", func(t *testing.T) {
		phone := "05551112233"
		q := readstoremock.NewMockOrderReadQueries(gomock.NewController(t))
		q.EXPECT().TrackOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.TrackOrderRow{}, pgx.ErrNoRows)

		_, err := readstore.NewOrderReadStore(q, nil, discardLogger()).Track(context.Background(), nil, &phone)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderReadStore_Counts(t *testing.T) {
	q := readstoremock.NewMockOrderReadQueries(gomock.NewController(t))
	q.EXPECT().CountOrders(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	q.EXPECT().CountCustomers(gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)
	q.EXPECT().ListOrdersForCustomer(gomock.Any(), gomock.Any(), int64(2)).Return([]sqlc.ListOrdersForCustomerRow{}, nil)

	store := readstore.NewOrderReadStore(q, nil, discardLogger())

	n, err := store.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = store.CountCustomers(context.Background(), nil)
	assert.ErrorIs(t, err, assert.AnError)

	views, err := store.ListForCustomer(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
