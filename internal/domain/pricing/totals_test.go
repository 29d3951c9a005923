package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrandTotal(t *testing.T) {
	assertDecimal(t, "0", GrandTotal(nil, decimal.Zero, decimal.Zero))

	items := []LineItemDraft{{TotalPrice: dec("10")}, {TotalPrice: dec("5")}}
	assertDecimal(t, "15", Subtotal(items))
	assertDecimal(t, "16", GrandTotal(items, dec("2"), dec("1")))

	// sem correção de valores negativos
	assertDecimal(t, "-5", GrandTotal(items, decimal.Zero, dec("20")))
}

func TestComputeTotals(t *testing.T) {
	items := []LineItemDraft{{TotalPrice: dec("200.00")}, {TotalPrice: dec("120.00")}}
	totals := ComputeTotals(items, dec("15"), dec("5"))
	assertDecimal(t, "320", totals.Subtotal)
	assertDecimal(t, "15", totals.DeliveryFee)
	assertDecimal(t, "5", totals.Discount)
	assertDecimal(t, "330", totals.GrandTotal)
}

func TestWithQuantityLeavesOriginalUntouched(t *testing.T) {
	cake := Product{ID: "bolo", BasePrice: dec("80"), SaleUnit: SaleUnitWeight, Mode: ModeSimple}
	item, err := Resolve(cake, "2", "")
	require.NoError(t, err)

	edited, err := item.WithQuantity(dec("3"))
	require.NoError(t, err)
	assertDecimal(t, "240", edited.TotalPrice)
	assertDecimal(t, "3", *edited.Attributes.Weight)

	assertDecimal(t, "160", item.TotalPrice)
	assertDecimal(t, "2", *item.Attributes.Weight)

	_, err = item.WithQuantity(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = item.WithQuantity(MaxQuantity.Add(dec("1")))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestWithQuantityKeepsFlavorsWithinBoxes(t *testing.T) {
	box := Product{ID: "caixa", BasePrice: dec("30"), SaleUnit: SaleUnitBox, Mode: ModeSimple, BoxCapacity: 4}
	item, err := Resolve(box, "2", "a, b, c, d, e, f, g, h")
	require.NoError(t, err)
	assert.Equal(t, 4, item.Attributes.BoxCapacity)

	_, err = item.WithRawQuantity("1")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "capacity_exceeded", Kind(err))

	edited, err := item.WithRawQuantity("3")
	require.NoError(t, err)
	assertDecimal(t, "90", edited.TotalPrice)
	assert.Len(t, edited.Attributes.Flavors, 8)
}

func TestWithRawQuantityFollowsMeasure(t *testing.T) {
	cake := Product{ID: "bolo", BasePrice: dec("80"), SaleUnit: SaleUnitWeight, Mode: ModeSimple}
	item, err := Resolve(cake, "1", "")
	require.NoError(t, err)
	edited, err := item.WithRawQuantity("1,25")
	require.NoError(t, err)
	assertDecimal(t, "100", edited.TotalPrice)

	bread := Product{ID: "pao", BasePrice: dec("2"), SaleUnit: SaleUnitUnit, Mode: ModeSimple}
	item, err = Resolve(bread, "3", "")
	require.NoError(t, err)
	edited, err = item.WithRawQuantity("2,5")
	require.NoError(t, err)
	assertDecimal(t, "1", edited.Quantity)
	edited, err = item.WithRawQuantity("6")
	require.NoError(t, err)
	assertDecimal(t, "12", edited.TotalPrice)
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	item := LineItemDraft{Attributes: Attributes{
		Flavors:        []string{"a"},
		ComboSelection: []ComboEntry{{ProductID: "p", Quantity: 1}},
	}}
	c := item.Clone()
	c.Attributes.Flavors[0] = "b"
	c.Attributes.ComboSelection[0].Quantity = 9
	assert.Equal(t, "a", item.Attributes.Flavors[0])
	assert.Equal(t, 1, item.Attributes.ComboSelection[0].Quantity)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "capacity_exceeded", Kind(ErrCapacityExceeded))
	assert.True(t, IsRejection(ErrRulesNotSatisfied))
	assert.False(t, IsRejection(assert.AnError))
}
