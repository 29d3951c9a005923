package draftstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, budget.DraftStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewRedisStore(rdb, ttl)
}

func TestSaveAndLoad(t *testing.T) {
	mr, store := newStore(t, 72*time.Hour)
	ctx := context.Background()

	d := budget.NewDraft("u1")
	require.NoError(t, d.SelectClient("c1", "a1"))
	d.AddItem(pricing.LineItemDraft{
		ProductID:   "p1",
		ProductName: "Pão de Mel",
		Quantity:    decimal.NewFromInt(3),
		UnitPrice:   decimal.RequireFromString("4.50"),
		TotalPrice:  decimal.RequireFromString("13.50"),
		Attributes:  pricing.Attributes{Measure: pricing.MeasureUnit},
	})
	require.NoError(t, d.SetDeliveryFee(decimal.NewFromInt(10)))
	require.NoError(t, store.Save(ctx, d))

	assert.True(t, mr.Exists("quotation_state:u1"))
	assert.Equal(t, 72*time.Hour, mr.TTL("quotation_state:u1"))

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", loaded.ClientID)
	require.Len(t, loaded.Items, 1)
	assert.True(t, loaded.Items[0].TotalPrice.Equal(decimal.RequireFromString("13.5")))
	assert.True(t, loaded.Totals().GrandTotal.Equal(decimal.RequireFromString("23.5")))
}

func TestLoadMissingAndExpired(t *testing.T) {
	mr, store := newStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "ninguem")
	assert.ErrorIs(t, err, budget.ErrDraftNotFound)

	require.NoError(t, store.Save(ctx, budget.NewDraft("u2")))
	mr.FastForward(2 * time.Hour)
	_, err = store.Load(ctx, "u2")
	assert.ErrorIs(t, err, budget.ErrDraftNotFound)
}

func TestDelete(t *testing.T) {
	_, store := newStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, budget.NewDraft("u3")))
	require.NoError(t, store.Delete(ctx, "u3"))
	_, err := store.Load(ctx, "u3")
	assert.ErrorIs(t, err, budget.ErrDraftNotFound)

	// remover o que não existe não é erro
	assert.NoError(t, store.Delete(ctx, "u3"))
}
