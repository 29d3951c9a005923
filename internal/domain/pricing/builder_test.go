package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderProduct(unit SaleUnit) Product {
	return Product{ID: "bolo-montado", Name: "Bolo montado", BasePrice: dec("50.00"), SaleUnit: unit, Mode: ModeBuilder}
}

func TestBuilderEndToEnd(t *testing.T) {
	groups := []BuilderGroup{{
		ID: "g1", Title: "Recheio", SelectionLimit: 2,
		Options: []BuilderOption{
			{ID: "X", Name: "Nutella", ExtraCost: dec("3.00")},
			{ID: "Y", Name: "Morango", ExtraCost: dec("2.00")},
			{ID: "Z", Name: "Doce de leite", ExtraCost: dec("0")},
		},
	}}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)

	require.NoError(t, b.ToggleOption("g1", "X"))
	require.NoError(t, b.ToggleOption("g1", "Z"))

	item, err := b.Finalize("3")
	require.NoError(t, err)
	assertDecimal(t, "3", item.Quantity)
	assertDecimal(t, "53.00", item.UnitPrice)
	assertDecimal(t, "159.00", item.TotalPrice)
	assert.Equal(t, MeasureUnit, item.Attributes.Measure)
	require.NotNil(t, item.Attributes.BuilderExtrasTotal)
	assertDecimal(t, "3", *item.Attributes.BuilderExtrasTotal)

	require.Len(t, item.Attributes.BuilderSelection, 1)
	sel := item.Attributes.BuilderSelection[0]
	assert.Equal(t, "g1", sel.GroupID)
	assert.Equal(t, "Recheio", sel.Title)
	require.Len(t, sel.Options, 2)
	assert.Equal(t, "X", sel.Options[0].ID)
	assert.Equal(t, "Z", sel.Options[1].ID)
}

func TestBuilderExtrasAcrossGroups(t *testing.T) {
	groups := []BuilderGroup{
		{ID: "massa", Title: "Massa", SelectionLimit: 1, Options: []BuilderOption{{ID: "A", ExtraCost: dec("2.00")}}},
		{ID: "cobertura", Title: "Cobertura", SelectionLimit: 1, Options: []BuilderOption{{ID: "B", ExtraCost: dec("1.50")}}},
	}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)

	require.NoError(t, b.ToggleOption("massa", "A"))
	require.NoError(t, b.ToggleOption("cobertura", "B"))
	assertDecimal(t, "3.50", b.ExtrasTotal())

	require.NoError(t, b.ToggleOption("cobertura", "B"))
	assertDecimal(t, "2.00", b.ExtrasTotal())
	assert.False(t, b.IsSelected("cobertura", "B"))

	require.NoError(t, b.ToggleOption("cobertura", "B"))
	assertDecimal(t, "3.50", b.ExtrasTotal())
}

func TestBuilderSelectionLimit(t *testing.T) {
	groups := []BuilderGroup{{
		ID: "g", Title: "Sabor", SelectionLimit: 1,
		Options: []BuilderOption{{ID: "a", ExtraCost: dec("0")}, {ID: "b", ExtraCost: dec("1")}},
	}}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)

	require.NoError(t, b.ToggleOption("g", "a"))
	err = b.ToggleOption("g", "b")
	assert.ErrorIs(t, err, ErrSelectionLimitExceeded)
	assert.True(t, b.IsSelected("g", "a"))
	assert.False(t, b.IsSelected("g", "b"))
}

func TestBuilderRules(t *testing.T) {
	empty, err := NewBuilderComposition(builderProduct(SaleUnitUnit), nil)
	require.NoError(t, err)
	assert.True(t, empty.RulesSatisfied())
	item, err := empty.Finalize("")
	require.NoError(t, err)
	assertDecimal(t, "50", item.TotalPrice)

	groups := []BuilderGroup{
		{ID: "g1", SelectionLimit: 1, Options: []BuilderOption{{ID: "o1", ExtraCost: dec("1")}}},
		{ID: "g2", SelectionLimit: 0, Options: []BuilderOption{{ID: "o2", ExtraCost: dec("1")}}},
	}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)
	assert.False(t, b.RulesSatisfied())
	_, err = b.Finalize("1")
	assert.ErrorIs(t, err, ErrRulesNotSatisfied)

	require.NoError(t, b.ToggleOption("g1", "o1"))
	assert.True(t, b.RulesSatisfied())
	assert.ErrorIs(t, b.ToggleOption("g2", "o2"), ErrSelectionLimitExceeded)
}

func TestBuilderByWeight(t *testing.T) {
	groups := []BuilderGroup{{ID: "g", SelectionLimit: 1, Options: []BuilderOption{{ID: "o", ExtraCost: dec("10")}}}}
	b, err := NewBuilderComposition(builderProduct(SaleUnitWeight), groups)
	require.NoError(t, err)
	require.NoError(t, b.ToggleOption("g", "o"))

	item, err := b.Finalize("1,5")
	require.NoError(t, err)
	assertDecimal(t, "60", item.UnitPrice)
	assertDecimal(t, "90", item.TotalPrice)
	assert.Equal(t, MeasureKg, item.Attributes.Measure)
	require.NotNil(t, item.Attributes.Weight)
}

func TestBuilderUnknownOption(t *testing.T) {
	groups := []BuilderGroup{{ID: "g", SelectionLimit: 1, Options: []BuilderOption{{ID: "o"}}}}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)
	assert.ErrorIs(t, b.ToggleOption("x", "o"), ErrUnknownOption)
	assert.ErrorIs(t, b.ToggleOption("g", "x"), ErrUnknownOption)
}

func TestBuilderFinalizedItemIsSnapshot(t *testing.T) {
	groups := []BuilderGroup{{ID: "g", SelectionLimit: 1, Options: []BuilderOption{{ID: "o", ExtraCost: dec("4")}}}}
	b, err := NewBuilderComposition(builderProduct(SaleUnitUnit), groups)
	require.NoError(t, err)
	require.NoError(t, b.ToggleOption("g", "o"))

	item, err := b.Finalize("1")
	require.NoError(t, err)

	groups[0].Options[0].ExtraCost = dec("100")
	require.NoError(t, b.ToggleOption("g", "o"))

	assertDecimal(t, "54", item.UnitPrice)
	assertDecimal(t, "4", *item.Attributes.BuilderExtrasTotal)
	assert.Len(t, item.Attributes.BuilderSelection[0].Options, 1)
}
