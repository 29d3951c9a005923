package budget

import (
	"testing"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleItems(t *testing.T) []pricing.LineItemDraft {
	t.Helper()
	cake := pricing.Product{ID: "bolo", BasePrice: d("80"), SaleUnit: pricing.SaleUnitWeight, Mode: pricing.ModeSimple}
	sweets := pricing.Product{ID: "docinho", BasePrice: d("1.50"), SaleUnit: pricing.SaleUnitUnit, Mode: pricing.ModeSimple}

	a, err := pricing.Resolve(cake, "2,5", "")
	require.NoError(t, err)
	b, err := pricing.Resolve(sweets, "100", "")
	require.NoError(t, err)
	return []pricing.LineItemDraft{a, b}
}

func TestNewBudgetTotals(t *testing.T) {
	b, err := NewBudget("cli", "end", "u1", sampleItems(t), d("15"), d("5"))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	require.Len(t, b.Items, 2)
	assert.Equal(t, b.ID, b.Items[0].BudgetID)
	assert.True(t, d("350").Equal(b.Subtotal), b.Subtotal.String())
	assert.True(t, d("360").Equal(b.TotalAmount), b.TotalAmount.String())
}

func TestNewBudgetValidation(t *testing.T) {
	items := sampleItems(t)
	_, err := NewBudget("", "end", "", items, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyClient)
	_, err = NewBudget("cli", "", "", items, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyAddress)
	_, err = NewBudget("cli", "end", "", nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrNoItems)
	_, err = NewBudget("cli", "end", "", items, d("-1"), decimal.Zero)
	assert.ErrorIs(t, err, ErrNegativeFee)
}

func TestBudgetItemEdits(t *testing.T) {
	b, err := NewBudget("cli", "end", "", sampleItems(t), d("10"), decimal.Zero)
	require.NoError(t, err)

	sweetsID := b.Items[1].ID
	item, err := b.EditItemQuantity(sweetsID, "50")
	require.NoError(t, err)
	assert.True(t, d("75").Equal(item.TotalPrice))
	assert.True(t, d("285").Equal(b.TotalAmount), b.TotalAmount.String())

	item, err = b.EditItemQuantity(sweetsID, "0")
	require.NoError(t, err)
	assert.True(t, d("1.5").Equal(item.TotalPrice), item.TotalPrice.String())
	_, err = b.EditItemQuantity(sweetsID, "50")
	require.NoError(t, err)

	require.NoError(t, b.RemoveItem(sweetsID))
	assert.Len(t, b.Items, 1)
	assert.True(t, d("210").Equal(b.TotalAmount))

	assert.ErrorIs(t, b.RemoveItem("nao-existe"), ErrItemNotFound)

	require.NoError(t, b.SetDeliveryFee(d("20")))
	assert.True(t, d("220").Equal(b.TotalAmount))
}

func TestBudgetEditItemQuantityFromText(t *testing.T) {
	b, err := NewBudget("cli", "end", "", sampleItems(t), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	cake, err := b.EditItemQuantity(b.Items[0].ID, "1,5")
	require.NoError(t, err)
	assert.True(t, d("120").Equal(cake.TotalPrice), cake.TotalPrice.String())

	sweets, err := b.EditItemQuantity(b.Items[1].ID, "abc")
	require.NoError(t, err)
	assert.True(t, d("1").Equal(sweets.Quantity))
	assert.True(t, d("121.5").Equal(b.TotalAmount), b.TotalAmount.String())
}

func TestCompletedBudgetIsClosed(t *testing.T) {
	b, err := NewBudget("cli", "end", "", sampleItems(t), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, b.ChangeStatus(StatusCompleted))

	assert.ErrorIs(t, b.SetDeliveryFee(d("1")), ErrBudgetClosed)
	assert.ErrorIs(t, b.RemoveItem(b.Items[0].ID), ErrBudgetClosed)
	assert.ErrorIs(t, b.ChangeStatus("arquivado"), ErrInvalidStatus)
}

func TestOrderFromBudget(t *testing.T) {
	b, err := NewBudget("cli", "end", "", sampleItems(t), decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	_, err = NewOrderFromBudget(b)
	assert.ErrorIs(t, err, ErrBudgetNotApproved)

	require.NoError(t, b.ChangeStatus(StatusApproved))
	o, err := NewOrderFromBudget(b)
	require.NoError(t, err)
	assert.Equal(t, b.ID, o.BudgetID)
	assert.Equal(t, "pendente", o.Status)
	assert.True(t, b.TotalAmount.Equal(o.TotalAmount))
}

func TestBudgetKeepsFrozenPrices(t *testing.T) {
	items := sampleItems(t)
	b, err := NewBudget("cli", "end", "", items, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	items[0].TotalPrice = d("1")
	*items[0].Attributes.Weight = d("9")
	assert.True(t, d("200").Equal(b.Items[0].TotalPrice))
	assert.True(t, d("2.5").Equal(*b.Items[0].Attributes.Weight))
}

func TestBudgetEditRejectsBoxShrinkBelowFlavors(t *testing.T) {
	box := pricing.Product{ID: "caixa", BasePrice: d("30"), SaleUnit: pricing.SaleUnitBox, Mode: pricing.ModeSimple, BoxCapacity: 4}
	item, err := pricing.Resolve(box, "2", "a, b, c, d, e, f, g, h")
	require.NoError(t, err)
	b, err := NewBudget("cli", "end", "", []pricing.LineItemDraft{item}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	_, err = b.EditItemQuantity(b.Items[0].ID, "1")
	assert.ErrorIs(t, err, pricing.ErrCapacityExceeded)
	assert.True(t, d("2").Equal(b.Items[0].Quantity))
	assert.True(t, d("60").Equal(b.TotalAmount), b.TotalAmount.String())
}
