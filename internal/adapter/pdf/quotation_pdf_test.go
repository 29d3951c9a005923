package pdf

import (
	"testing"
	"time"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	weight := decimal.RequireFromString("1.5")
	b, err := budget.NewBudget("c1", "a1", "u1", []pricing.LineItemDraft{
		{
			ProductID:   "bolo",
			ProductName: "Bolo de Chocolate",
			Quantity:    weight,
			UnitPrice:   decimal.RequireFromString("80"),
			TotalPrice:  decimal.RequireFromString("120"),
			Attributes:  pricing.Attributes{Measure: pricing.MeasureKg, Weight: &weight},
		},
		{
			ProductID:   "caixa",
			ProductName: "Caixa Degustação",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.RequireFromString("60"),
			TotalPrice:  decimal.RequireFromString("120"),
			Attributes: pricing.Attributes{
				Measure:        pricing.MeasureCombo,
				ComboSelection: []pricing.ComboEntry{{ProductID: "brig", Quantity: 9}},
			},
		},
	}, decimal.RequireFromString("15"), decimal.RequireFromString("5"))
	require.NoError(t, err)
	b.CreatedAt = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	html, err := RenderHTML(Document{
		Budget:       b,
		Client:       &client.Client{Name: "Maria <Doces>", WhatsApp: "11999990000"},
		Address:      &client.Address{Street: "Rua das Flores", Number: "10", Neighborhood: "Centro", City: "Campinas", State: "SP"},
		ProductNames: map[string]string{"brig": "Brigadeiro"},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "14/03/2026")
	assert.Contains(t, html, "Maria &lt;Doces&gt;")
	assert.Contains(t, html, "Rua das Flores, 10")
	assert.Contains(t, html, "1,5 kg")
	assert.Contains(t, html, "9x Brigadeiro")
	assert.Contains(t, html, "R$ 240,00")
	assert.Contains(t, html, "R$ 250,00")
}
