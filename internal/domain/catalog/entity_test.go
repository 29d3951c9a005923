package catalog

import (
	"testing"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewProductCapacityRules(t *testing.T) {
	price := decimal.RequireFromString("60")

	_, err := NewProduct("Caixa", "", price, pricing.SaleUnitBox, pricing.ModeCombo, nil)
	assert.ErrorIs(t, err, ErrComboCapacityRequired)

	_, err = NewProduct("Caixa", "", price, pricing.SaleUnitBox, pricing.ModeCombo, intPtr(0))
	assert.ErrorIs(t, err, ErrComboCapacityRequired)

	_, err = NewProduct("Bolo", "", price, pricing.SaleUnitWeight, pricing.ModeSimple, intPtr(9))
	assert.ErrorIs(t, err, ErrCapacityOnlyForCombo)

	p, err := NewProduct("Caixa", "cat", price, pricing.SaleUnitBox, pricing.ModeCombo, intPtr(9))
	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.True(t, p.VisibleInBudget)
	assert.True(t, p.IsCombo())
	assert.Equal(t, 9, p.Pricing().ComboCapacity)
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct(" ", "", decimal.Zero, pricing.SaleUnitUnit, pricing.ModeSimple, nil)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Pão", "", decimal.NewFromInt(-1), pricing.SaleUnitUnit, pricing.ModeSimple, nil)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("Pão", "", decimal.Zero, "litro", pricing.ModeSimple, nil)
	assert.ErrorIs(t, err, ErrInvalidSaleUnit)
}

func TestDeactivate(t *testing.T) {
	p, err := NewProduct("Pão", "", decimal.NewFromInt(1), pricing.SaleUnitUnit, pricing.ModeSimple, nil)
	require.NoError(t, err)
	assert.NoError(t, p.CheckAvailable())
	p.Deactivate()
	assert.False(t, p.Active)
	assert.ErrorIs(t, p.CheckAvailable(), ErrProductUnavailable)
}

func TestBuilderGroupAndOption(t *testing.T) {
	_, err := NewBuilderGroup("p", "Recheio", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSelectionLimit)

	g, err := NewBuilderGroup("p", "Recheio", 2, 1)
	require.NoError(t, err)

	_, err = NewBuilderOption(g.ID, "Nutella", decimal.NewFromInt(-3), 0)
	assert.ErrorIs(t, err, ErrNegativeExtraCost)

	o, err := NewBuilderOption(g.ID, "Nutella", decimal.NewFromInt(3), 0)
	require.NoError(t, err)
	g.Options = append(g.Options, *o)

	groups := PricingGroups([]BuilderGroup{*g})
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].SelectionLimit)
	require.Len(t, groups[0].Options, 1)
	assert.Equal(t, "Nutella", groups[0].Options[0].Name)
}

func TestNewCategory(t *testing.T) {
	_, err := NewCategory("Bolos", "LITRO")
	assert.ErrorIs(t, err, ErrInvalidMeasurementUnit)

	c, err := NewCategory(" Bolos ", MeasurementKg)
	require.NoError(t, err)
	assert.Equal(t, "Bolos", c.Name)
}
