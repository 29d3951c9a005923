package pricing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comboFixture(capacity int) (Product, []AllowedProduct) {
	p := Product{ID: "combo", Name: "Caixa de doces", BasePrice: dec("60.00"), SaleUnit: SaleUnitBox, Mode: ModeCombo, ComboCapacity: capacity}
	allowed := []AllowedProduct{
		{ProductID: "P1", Name: "Brigadeiro", BasePrice: dec("2.50")},
		{ProductID: "P2", Name: "Beijinho", BasePrice: dec("2.50")},
	}
	return p, allowed
}

func TestComboEndToEnd(t *testing.T) {
	p, allowed := comboFixture(9)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Increment("P2"))
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Increment("P1"))
	}
	s.SetBoxCount("2")

	item, err := s.Finalize()
	require.NoError(t, err)
	assertDecimal(t, "2", item.Quantity)
	assertDecimal(t, "60", item.UnitPrice)
	assertDecimal(t, "120.00", item.TotalPrice)
	assert.Equal(t, MeasureCombo, item.Attributes.Measure)
	assert.Equal(t, []ComboEntry{{ProductID: "P1", Quantity: 5}, {ProductID: "P2", Quantity: 4}}, item.Attributes.ComboSelection)
}

func TestComboFinalizeRequiresExactCapacity(t *testing.T) {
	p, allowed := comboFixture(9)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		require.NoError(t, s.Increment("P1"))
	}
	_, err = s.Finalize()
	assert.ErrorIs(t, err, ErrCapacityMismatch)

	require.NoError(t, s.Increment("P2"))
	_, err = s.Finalize()
	assert.NoError(t, err)
}

func TestComboIncrementBeyondCapacity(t *testing.T) {
	p, allowed := comboFixture(2)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)

	require.NoError(t, s.Increment("P1"))
	require.NoError(t, s.Increment("P2"))
	err = s.Increment("P1")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 1, s.Count("P1"))
	assert.Equal(t, 2, s.Selected())
	assert.Equal(t, 0, s.Remaining())
}

func TestComboDecrementAtZeroIsNoop(t *testing.T) {
	p, allowed := comboFixture(9)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)

	s.Decrement("P1")
	assert.Equal(t, 0, s.Count("P1"))

	require.NoError(t, s.Increment("P1"))
	s.Decrement("P1")
	s.Decrement("P1")
	assert.Equal(t, 0, s.Selected())
}

func TestComboDefaultCapacity(t *testing.T) {
	p, allowed := comboFixture(0)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)
	assert.Equal(t, DefaultComboCapacity, s.Capacity())
}

func TestComboInvariantHoldsForRandomSequences(t *testing.T) {
	p, allowed := comboFixture(6)
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		s, err := NewComboSelection(p, allowed)
		require.NoError(t, err)
		for step := 0; step < 40; step++ {
			id := allowed[rng.Intn(len(allowed))].ProductID
			if rng.Intn(3) == 0 {
				s.Decrement(id)
			} else {
				_ = s.Increment(id)
			}
			require.LessOrEqual(t, s.Selected(), s.Capacity())
			require.GreaterOrEqual(t, s.Count(id), 0)
		}
		_, err = s.Finalize()
		assert.Equal(t, s.Selected() == s.Capacity(), err == nil)
	}
}

func TestComboRejectsUnknownAndEmpty(t *testing.T) {
	p, allowed := comboFixture(9)

	_, err := NewComboSelection(p, nil)
	assert.ErrorIs(t, err, ErrNoAllowedProducts)

	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Increment("P9"), ErrProductNotAllowed)

	simple := p
	simple.Mode = ModeSimple
	_, err = NewComboSelection(simple, allowed)
	assert.ErrorIs(t, err, ErrUnsupportedComposition)
}

func TestComboBoxCountFallback(t *testing.T) {
	p, allowed := comboFixture(9)
	s, err := NewComboSelection(p, allowed)
	require.NoError(t, err)

	s.SetBoxCount("abc")
	assert.Equal(t, int64(1), s.BoxCount())
	s.SetBoxCount("3")
	assert.Equal(t, int64(3), s.BoxCount())
}
