//go:build unit

package queries_test

import (
	"context"
	"testing"

	"dryclean-api/internal/infra"
	"dryclean-api/internal/usecase/queries"
	queriesmock "dryclean-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParsePage(t *testing.T) {
	tests := map[string]int{
		"":     1,
		"1":    1,
		" 4 ":  4,
		"0":    1,
		"-3":   1,
		"abc":  1,
		"2.5":  1,
		"1000": 1000,
	}
	for raw, want := range tests {
		assert.Equal(t, want, queries.ParsePage(raw), "raw=%q", raw)
	}
}

func TestValidatePerPage(t *testing.T) {
	assert.Equal(t, queries.DefaultPerPage, queries.ValidatePerPage(0))
	assert.Equal(t, queries.DefaultPerPage, queries.ValidatePerPage(-1))
	assert.Equal(t, 20, queries.ValidatePerPage(20))
	assert.Equal(t, queries.MaxPerPage, queries.ValidatePerPage(queries.MaxPerPage+1))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count   int64
		perPage int
		want    int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{3, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, queries.TotalPages(tt.count, tt.perPage), "count=%d perPage=%d", tt.count, tt.perPage)
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, queries.Page{Number: 1, PerPage: 5}.Offset())
	assert.Equal(t, 10, queries.Page{Number: 3, PerPage: 5}.Offset())
}

func TestLookupNotFound(t *testing.T) {
	notFound := infra.RepositoryError{Kind: infra.KindNotFound}

	t.Run("customer", func(t *testing.T) {
		store := queriesmock.NewMockCustomerReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, notFound)

		_, err := queries.NewCustomerQueries(store).GetCurrentCustomer(context.Background(), 8)
		assert.ErrorIs(t, err, queries.ErrCustomerNotFound)
	})

	t.Run("customer found", func(t *testing.T) {
		store := queriesmock.NewMockCustomerReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), int64(8)).Return(&queries.CustomerView{ID: 8, Role: "musteri"}, nil)

		v, err := queries.NewCustomerQueries(store).GetCurrentCustomer(context.Background(), 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), v.ID)
	})

	t.Run("branch", func(t *testing.T) {
		store := queriesmock.NewMockBranchReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, notFound)

		_, err := queries.NewBranchQueries(store).Get(context.Background(), 2)
		assert.ErrorIs(t, err, queries.ErrBranchNotFound)
	})

	t.Run("other branch errors pass through", func(t *testing.T) {
		store := queriesmock.NewMockBranchReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, assert.AnError)

		_, err := queries.NewBranchQueries(store).Get(context.Background(), 2)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestContactQueries_List(t *testing.T) {
	store := queriesmock.NewMockContactReadStore(gomock.NewController(t))
	store.EXPECT().List(gomock.Any()).Return([]*queries.ContactMessageView{{ID: 1, Message: "Merhaba"}}, nil)

	got, err := queries.NewContactQueries(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Merhaba", got[0].Message)
}
