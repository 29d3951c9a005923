package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComboEntry é um produto escolhido dentro de um combo e sua quantidade
type ComboEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// BuilderOptionSelection é uma opção escolhida, com o custo vigente na seleção
type BuilderOptionSelection struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ExtraCost decimal.Decimal `json:"extra_cost"`
}

// BuilderGroupSelection agrupa as opções escolhidas de um grupo
type BuilderGroupSelection struct {
	GroupID string                   `json:"group_id"`
	Title   string                   `json:"title"`
	Options []BuilderOptionSelection `json:"options"`
}

// Attributes é o conjunto de detalhes gravado junto com o item do orçamento
type Attributes struct {
	Measure            Measure                 `json:"measure"`
	Weight             *decimal.Decimal        `json:"weight,omitempty"`
	Flavors            []string                `json:"flavors,omitempty"`
	BoxCapacity        int                     `json:"box_capacity,omitempty"`
	ComboSelection     []ComboEntry            `json:"combo_selection,omitempty"`
	BuilderSelection   []BuilderGroupSelection `json:"builder_selection,omitempty"`
	BuilderExtrasTotal *decimal.Decimal        `json:"builder_extras_total,omitempty"`
}

// LineItemDraft é um item resolvido, pronto para entrar em um orçamento.
// Depois de finalizado não deve ser alterado; use WithQuantity para obter uma cópia.
type LineItemDraft struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Attributes  Attributes      `json:"attributes"`
}

// Clone devolve uma cópia que não compartilha slices nem ponteiros com o original
func (li LineItemDraft) Clone() LineItemDraft {
	out := li
	a := li.Attributes
	if a.Weight != nil {
		w := *a.Weight
		out.Attributes.Weight = &w
	}
	if a.BuilderExtrasTotal != nil {
		t := *a.BuilderExtrasTotal
		out.Attributes.BuilderExtrasTotal = &t
	}
	if a.Flavors != nil {
		out.Attributes.Flavors = append([]string(nil), a.Flavors...)
	}
	if a.ComboSelection != nil {
		out.Attributes.ComboSelection = append([]ComboEntry(nil), a.ComboSelection...)
	}
	if a.BuilderSelection != nil {
		groups := make([]BuilderGroupSelection, len(a.BuilderSelection))
		for i, g := range a.BuilderSelection {
			groups[i] = BuilderGroupSelection{
				GroupID: g.GroupID,
				Title:   g.Title,
				Options: append([]BuilderOptionSelection(nil), g.Options...),
			}
		}
		out.Attributes.BuilderSelection = groups
	}
	return out
}

// WithQuantity devolve uma cópia do item com nova quantidade e total recalculado.
// O preço unitário capturado na finalização é mantido e os sabores precisam caber nas caixas.
func (li LineItemDraft) WithQuantity(q decimal.Decimal) (LineItemDraft, error) {
	if !inRange(q) {
		return LineItemDraft{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, q.String())
	}
	if a := li.Attributes; a.BoxCapacity > 0 && len(a.Flavors) > 0 {
		limit := int64(a.BoxCapacity) * q.IntPart()
		if int64(len(a.Flavors)) > limit {
			return LineItemDraft{}, fmt.Errorf("%w: %d sabores para no máximo %d", ErrCapacityExceeded, len(a.Flavors), limit)
		}
	}
	out := li.Clone()
	out.Quantity = q
	out.TotalPrice = li.UnitPrice.Mul(q)
	if out.Attributes.Weight != nil {
		out.Attributes.Weight = &q
	}
	return out, nil
}

// WithRawQuantity interpreta a quantidade digitada conforme a medida do item
// (peso para kg, contagem para o resto) e aplica WithQuantity.
func (li LineItemDraft) WithRawQuantity(raw string) (LineItemDraft, error) {
	if li.Attributes.Measure == MeasureKg {
		return li.WithQuantity(ParseQuantity(raw))
	}
	return li.WithQuantity(decimal.NewFromInt(ParseCount(raw)))
}
