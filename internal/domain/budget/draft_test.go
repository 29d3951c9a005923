package budget

import (
	"testing"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftLifecycle(t *testing.T) {
	draft := NewDraft("u1")
	assert.True(t, draft.Totals().GrandTotal.IsZero())

	for _, it := range sampleItems(t) {
		draft.AddItem(it)
	}
	require.NoError(t, draft.SetDeliveryFee(d("12")))
	require.NoError(t, draft.SetDiscount(d("2")))
	assert.True(t, d("360").Equal(draft.Totals().GrandTotal), draft.Totals().GrandTotal.String())

	require.NoError(t, draft.EditItemQuantity(0, "1"))
	assert.True(t, d("80").Equal(draft.Items[0].TotalPrice))

	require.NoError(t, draft.RemoveItem(1))
	assert.True(t, d("90").Equal(draft.Totals().GrandTotal))

	require.NoError(t, draft.EditItemQuantity(0, "0,5"))
	assert.True(t, d("40").Equal(draft.Items[0].TotalPrice))
	assert.ErrorIs(t, draft.EditItemQuantity(3, "1"), ErrItemIndexInvalid)

	box := pricing.Product{ID: "caixa", BasePrice: d("30"), SaleUnit: pricing.SaleUnitBox, Mode: pricing.ModeSimple, BoxCapacity: 4}
	boxItem, err := pricing.Resolve(box, "2", "a, b, c, d, e, f, g, h")
	require.NoError(t, err)
	i := draft.AddItem(boxItem)
	assert.ErrorIs(t, draft.EditItemQuantity(i, "1"), pricing.ErrCapacityExceeded)
	assert.True(t, d("60").Equal(draft.Items[i].TotalPrice))
	require.NoError(t, draft.RemoveItem(i))

	assert.ErrorIs(t, draft.RemoveItem(5), ErrItemIndexInvalid)
	assert.ErrorIs(t, draft.SetDiscount(d("-1")), ErrNegativeDiscount)
}

func TestDraftToBudget(t *testing.T) {
	draft := NewDraft("u1")
	for _, it := range sampleItems(t) {
		draft.AddItem(it)
	}

	_, err := draft.ToBudget("u1")
	assert.ErrorIs(t, err, ErrDraftClientNotSet)

	require.NoError(t, draft.SelectClient("cli", "end"))
	b, err := draft.ToBudget("u1")
	require.NoError(t, err)
	assert.Equal(t, "cli", b.ClientID)
	assert.Equal(t, "u1", b.CreatedBy)
	assert.Len(t, b.Items, 2)
	assert.True(t, draft.Totals().GrandTotal.Equal(b.TotalAmount))
}

func TestDraftReplaceItem(t *testing.T) {
	draft := NewDraft("u1")
	items := sampleItems(t)
	draft.AddItem(items[0])

	require.NoError(t, draft.ReplaceItem(0, items[1]))
	assert.Equal(t, "docinho", draft.Items[0].ProductID)
	assert.ErrorIs(t, draft.ReplaceItem(3, items[1]), ErrItemIndexInvalid)
}
