//go:build unit

package repository_test

import (
	"context"
	"testing"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/infra/repository"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/pkg/pgconv"
	repositorymock "dryclean-api/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceRepository_LoadOverrides(t *testing.T) {
	t.Run("unreadable rows are skipped", func(t *testing.T) {
		q := repositorymock.NewMockPriceWriteQueries(gomock.NewController(t))
		q.EXPECT().ListPriceSettings(gomock.Any(), gomock.Any()).Return([]sqlc.PriceSettings{
			{Category: "product", Key: "gomlek", Value: pgconv.DecimalToNumeric(decimal.New(8550, -2))},
			{Category: "product", Key: "mont", Value: pgtype.Numeric{NaN: true, Valid: true}},
			{Category: "bag", Key: "bag", Value: pgconv.DecimalToNumeric(decimal.New(25000, -2))},
		}, nil)

		got, err := repository.NewPriceRepository(q, discardLogger()).LoadOverrides(context.Background(), nil)
		require.NoError(t, err)

		type flat struct {
			Category string
			Key      string
			Kurus    int64
		}
		var flattened []flat
		for _, o := range got {
			flattened = append(flattened, flat{string(o.Category), o.Key, o.Value.Kurus()})
		}
		want := []flat{
			{"product", "gomlek", 8550},
			{"bag", "bag", 25000},
		}
		if diff := cmp.Diff(want, flattened); diff != "" {
			t.Errorf("overrides mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("database error", func(t *testing.T) {
		q := repositorymock.NewMockPriceWriteQueries(gomock.NewController(t))
		q.EXPECT().ListPriceSettings(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := repository.NewPriceRepository(q, discardLogger()).LoadOverrides(context.Background(), nil)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPriceRepository_SaveAll(t *testing.T) {
	overrides := []catalog.Override{
		{Category: catalog.CategoryProduct, Key: "gomlek", Value: catalog.TL(85)},
		{Category: catalog.CategoryService, Key: "sadece_utu", Value: catalog.NewMoney(4550)},
	}

	t.Run("upserts every override", func(t *testing.T) {
		q := repositorymock.NewMockPriceWriteQueries(gomock.NewController(t))
		var keys []string
		q.EXPECT().UpsertPriceSetting(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertPriceSettingParams) error {
				keys = append(keys, arg.Category+"."+arg.Key)
				return nil
			}).Times(2)

		require.NoError(t, repository.NewPriceRepository(q, discardLogger()).SaveAll(context.Background(), nil, overrides))
		assert.Equal(t, []string{"product.gomlek", "service.sadece_utu"}, keys)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		q := repositorymock.NewMockPriceWriteQueries(gomock.NewController(t))
		q.EXPECT().UpsertPriceSetting(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

		err := repository.NewPriceRepository(q, discardLogger()).SaveAll(context.Background(), nil, overrides)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
