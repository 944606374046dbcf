//go:build unit

package catalog_test

import (
	"testing"

	"dryclean-api/internal/domain/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "integer", raw: "85", want: 8500},
		{name: "dot decimal", raw: "85.5", want: 8550},
		{name: "comma decimal", raw: "85,5", want: 8550},
		{name: "surrounding spaces", raw: "  12,25 ", want: 1225},
		{name: "zero", raw: "0", want: 0},
		{name: "blank", raw: "  ", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "nan", raw: "NaN", wantErr: true},
		{name: "rounds to kurus", raw: "1.005", want: 101},
		{name: "column maximum", raw: "99999999.99", want: 9_999_999_999},
		{name: "above column maximum", raw: "100000000", wantErr: true},
		{name: "rounds past column maximum", raw: "99999999.995", wantErr: true},
		{name: "huge", raw: "100000000000000000000", wantErr: true},
		{name: "exponent", raw: "1e3", wantErr: true},
		{name: "float exponent", raw: "1e20", wantErr: true},
		{name: "hex float", raw: "0x1p4", wantErr: true},
		{name: "explicit plus", raw: "+5", wantErr: true},
		{name: "two separators", raw: "1.000,50", wantErr: true},
		{name: "separator only", raw: ",", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := catalog.ParseMoney(c.raw)
			if c.wantErr {
				require.ErrorIs(t, err, catalog.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, m.Kurus())
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "160", catalog.TL(160).String())
	assert.Equal(t, "85.50", catalog.NewMoney(8550).String())
	assert.Equal(t, "0.05", catalog.NewMoney(5).String())
	assert.Equal(t, "0", catalog.Money{}.String())
	assert.Equal(t, "99999999.99", catalog.MaxAmount.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	assert.Equal(t, "171", catalog.NewMoney(8550).Mul(2).String())
	assert.Equal(t, "85.55", catalog.NewMoney(8550).Add(catalog.NewMoney(5)).String())
	assert.True(t, catalog.TL(85).Equal(catalog.NewMoney(8500)))
	assert.True(t, catalog.MaxAmount.Add(catalog.NewMoney(1)).GreaterThan(catalog.MaxAmount))
	assert.True(t, catalog.Money{}.IsZero())
	assert.InDelta(t, 85.5, catalog.NewMoney(8550).Lira(), 1e-9)

	// stays exact where int64 kurus would wrap
	huge := catalog.MaxAmount.Mul(1 << 40)
	assert.True(t, huge.GreaterThan(catalog.MaxAmount))
	assert.False(t, huge.Decimal().IsNegative())
}

func TestLoad(t *testing.T) {
	t.Run("no overrides yields defaults", func(t *testing.T) {
		got := catalog.Load(catalog.Default(), nil)

		assert.Equal(t, catalog.TL(70).String(), got.ProductPrice(catalog.ProductShirt).String())
		assert.Equal(t, catalog.TL(10).String(), got.ServiceSurcharge(catalog.ServiceWashDry).String())
		assert.Equal(t, catalog.TL(300).String(), got.BagPrice().String())
	})

	t.Run("override replaces only its key", func(t *testing.T) {
		got := catalog.Load(catalog.Default(), []catalog.Override{
			{Category: catalog.CategoryProduct, Key: "gomlek", Value: catalog.TL(85)},
		})

		assert.Equal(t, catalog.TL(85).String(), got.ProductPrice(catalog.ProductShirt).String())
		assert.Equal(t, catalog.TL(100).String(), got.ProductPrice(catalog.ProductTrousers).String())
	})

	t.Run("bag and service overrides", func(t *testing.T) {
		got := catalog.Load(catalog.Default(), []catalog.Override{
			{Category: catalog.CategoryBag, Key: catalog.BagKey, Value: catalog.TL(250)},
			{Category: catalog.CategoryService, Key: "sadece_utu", Value: catalog.NewMoney(4550)},
		})

		assert.Equal(t, catalog.TL(250).String(), got.BagPrice().String())
		assert.Equal(t, catalog.NewMoney(4550).String(), got.ServiceSurcharge(catalog.ServiceIronOnly).String())
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		got := catalog.Load(catalog.Default(), []catalog.Override{
			{Category: catalog.CategoryProduct, Key: "hali", Value: catalog.TL(500)},
			{Category: catalog.CategoryBag, Key: "other", Value: catalog.TL(1)},
			{Category: "misc", Key: "gomlek", Value: catalog.TL(1)},
		})

		assert.False(t, got.HasProduct("hali"))
		assert.Equal(t, catalog.TL(300).String(), got.BagPrice().String())
		assert.Equal(t, catalog.TL(70).String(), got.ProductPrice(catalog.ProductShirt).String())
	})

	t.Run("defaults are not mutated", func(t *testing.T) {
		defaults := catalog.Default()
		_ = catalog.Load(defaults, []catalog.Override{
			{Category: catalog.CategoryProduct, Key: "gomlek", Value: catalog.TL(1)},
		})

		assert.Equal(t, catalog.TL(70).String(), defaults.ProductPrice(catalog.ProductShirt).String())
	})
}

func TestPriceCatalog_Apply(t *testing.T) {
	t.Run("best effort update", func(t *testing.T) {
		current := catalog.Default()

		next, rejected := current.Apply(catalog.Update{
			Products: map[string]string{"gomlek": "85,5", "kazak": "abc", "mont": ""},
			Services: map[string]string{"yikama": "5", "yok": "99"},
			Bag:      "-1",
		})

		assert.Equal(t, catalog.NewMoney(8550).String(), next.ProductPrice(catalog.ProductShirt).String())
		assert.Equal(t, catalog.TL(90).String(), next.ProductPrice(catalog.ProductSweater).String())
		assert.Equal(t, catalog.TL(220).String(), next.ProductPrice(catalog.ProductCoat).String())
		assert.Equal(t, catalog.TL(5).String(), next.ServiceSurcharge(catalog.ServiceWash).String())
		assert.Equal(t, catalog.TL(0).String(), next.ServiceSurcharge(catalog.ServiceNone).String())
		assert.Equal(t, catalog.TL(300).String(), next.BagPrice().String())

		if diff := cmp.Diff([]string{"bag.bag", "product.kazak"}, rejected); diff != "" {
			t.Errorf("rejected mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, catalog.TL(70).String(), current.ProductPrice(catalog.ProductShirt).String())
	})

	t.Run("out of range value is rejected without blocking the rest", func(t *testing.T) {
		next, rejected := catalog.Default().Apply(catalog.Update{
			Products: map[string]string{"gomlek": "1e9", "mont": "999999999", "kazak": "95"},
			Bag:      "99999999,99",
		})

		assert.Equal(t, "70", next.ProductPrice(catalog.ProductShirt).String())
		assert.Equal(t, "220", next.ProductPrice(catalog.ProductCoat).String())
		assert.Equal(t, "95", next.ProductPrice(catalog.ProductSweater).String())
		assert.Equal(t, "99999999.99", next.BagPrice().String())
		if diff := cmp.Diff([]string{"product.gomlek", "product.mont"}, rejected); diff != "" {
			t.Errorf("rejected mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("overrides cover every key", func(t *testing.T) {
		overrides := catalog.Default().Overrides()

		assert.Len(t, overrides, len(catalog.Products())+len(catalog.Services())+1)
		assert.Equal(t, catalog.CategoryBag, overrides[0].Category)

		reloaded := catalog.Load(catalog.Default(), overrides)
		if diff := cmp.Diff(catalog.Default().ProductPrices(), reloaded.ProductPrices(), cmp.Comparer(catalog.Money.Equal)); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Gömlek", catalog.ProductShirt.Label())
	assert.Equal(t, "yikama kurutma utu", catalog.ServiceWashDryIron.Display())
	assert.Equal(t, "hali", catalog.ProductKey("hali").Label())
}
