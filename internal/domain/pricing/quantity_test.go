package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %s, obtido %s", want, got)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]string{
		"2,5":     "2.5",
		"2.5":     "2.5",
		" 1,25":   "1.25",
		"":        "1",
		"abc":     "1",
		"-5":      "1",
		"0":       "1",
		"1.5.5":   "1",
		"1e50000": "1",
		"100001":  "1",
		"100000":  "100000",
		"0,0001":  "1",
		"1,23456": "1.235",

		"1e-999999999": "1",
	}
	for in, want := range cases {
		assertDecimal(t, want, ParseQuantity(in))
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int64{
		"3":   3,
		"12":  12,
		"":    1,
		"abc": 1,
		"-5":  1,
		"0":   1,
		"2,5": 1,
		"4,0": 4,

		"100000":               100000,
		"100001":               1,
		"9223372036854775808":  1,
		"18446744073709551615": 1,
		"1e19":                 1,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseCount(in), "entrada %q", in)
	}
}

func TestParseAmount(t *testing.T) {
	assertDecimal(t, "12.5", ParseAmount("12,50"))
	assertDecimal(t, "0", ParseAmount(""))
	assertDecimal(t, "0", ParseAmount("grátis"))
}

func TestParseFlavors(t *testing.T) {
	assert.Equal(t, []string{"brigadeiro", "beijinho", "cajuzinho"}, ParseFlavors(" brigadeiro, beijinho,, cajuzinho ,"))
	assert.Nil(t, ParseFlavors("  "))
}

func TestResolveByWeight(t *testing.T) {
	cake := Product{ID: "bolo", Name: "Bolo de chocolate", BasePrice: dec("80.00"), SaleUnit: SaleUnitWeight, Mode: ModeSimple}

	item, err := Resolve(cake, "2,5", "")
	require.NoError(t, err)
	assertDecimal(t, "2.5", item.Quantity)
	assertDecimal(t, "80", item.UnitPrice)
	assertDecimal(t, "200.00", item.TotalPrice)
	assert.Equal(t, MeasureKg, item.Attributes.Measure)
	require.NotNil(t, item.Attributes.Weight)
	assertDecimal(t, "2.5", *item.Attributes.Weight)

	for _, w := range []string{"0.1", "1", "3.75", "10"} {
		item, err := Resolve(cake, w, "")
		require.NoError(t, err)
		assertDecimal(t, cake.BasePrice.Mul(dec(w)).String(), item.TotalPrice)
	}
}

func TestResolveByUnit(t *testing.T) {
	p := Product{ID: "coxinha", BasePrice: dec("1.20"), SaleUnit: SaleUnitUnit, Mode: ModeSimple}

	for n := int64(1); n <= 50; n += 7 {
		item, err := Resolve(p, decimal.NewFromInt(n).String(), "")
		require.NoError(t, err)
		assert.Equal(t, n, item.Quantity.IntPart())
		assertDecimal(t, p.BasePrice.Mul(decimal.NewFromInt(n)).String(), item.TotalPrice)
		assert.Equal(t, MeasureUnit, item.Attributes.Measure)
		assert.Nil(t, item.Attributes.Weight)
	}
}

func TestResolveMalformedFallsBackToOne(t *testing.T) {
	products := []Product{
		{ID: "a", BasePrice: dec("10"), SaleUnit: SaleUnitWeight},
		{ID: "b", BasePrice: dec("10"), SaleUnit: SaleUnitUnit},
		{ID: "c", BasePrice: dec("10"), SaleUnit: SaleUnitBox},
	}
	for _, p := range products {
		for _, in := range []string{"", "abc", "-5"} {
			item, err := Resolve(p, in, "")
			require.NoError(t, err)
			assertDecimal(t, "1", item.Quantity)
			assertDecimal(t, "10", item.TotalPrice)
		}
	}
}

func TestResolveBoxFlavors(t *testing.T) {
	box := Product{ID: "caixa-doces", BasePrice: dec("45"), SaleUnit: SaleUnitBox, Mode: ModeSimple, BoxCapacity: 2}

	item, err := Resolve(box, "2", "brigadeiro, beijinho, cajuzinho, ")
	require.NoError(t, err)
	assertDecimal(t, "90", item.TotalPrice)
	assert.Equal(t, MeasureBox, item.Attributes.Measure)
	assert.Equal(t, []string{"brigadeiro", "beijinho", "cajuzinho"}, item.Attributes.Flavors)

	_, err = Resolve(box, "1", "brigadeiro, beijinho, cajuzinho")
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	noCapacity := box
	noCapacity.BoxCapacity = 0
	item, err = Resolve(noCapacity, "1", "a, b, c, d")
	require.NoError(t, err)
	assert.Len(t, item.Attributes.Flavors, 4)
}

func TestResolveRejectsComposedProducts(t *testing.T) {
	_, err := Resolve(Product{ID: "x", Mode: ModeCombo, SaleUnit: SaleUnitBox}, "1", "")
	assert.ErrorIs(t, err, ErrUnsupportedComposition)
}

func TestParseSaleUnitAndMode(t *testing.T) {
	u, ok := ParseSaleUnit("weight")
	assert.True(t, ok)
	assert.Equal(t, SaleUnitWeight, u)
	u, ok = ParseSaleUnit("CAIXA")
	assert.True(t, ok)
	assert.Equal(t, SaleUnitBox, u)
	_, ok = ParseSaleUnit("litro")
	assert.False(t, ok)

	m, ok := ParseCompositionMode("builder")
	assert.True(t, ok)
	assert.Equal(t, ModeBuilder, m)
	m, ok = ParseCompositionMode("SIMPLES")
	assert.True(t, ok)
	assert.Equal(t, ModeSimple, m)
}

func TestResolveHugeCountFallsBackToOne(t *testing.T) {
	p := Product{ID: "coxinha", BasePrice: dec("10"), SaleUnit: SaleUnitUnit, Mode: ModeSimple}

	for _, in := range []string{"9223372036854775808", "18446744073709551615", "1e19"} {
		item, err := Resolve(p, in, "")
		require.NoError(t, err)
		assertDecimal(t, "1", item.Quantity)
		assertDecimal(t, "10", item.TotalPrice)
	}
}
