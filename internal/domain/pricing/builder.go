package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuilderComposition guarda as opções escolhidas de um produto montável
type BuilderComposition struct {
	product  Product
	groups   []BuilderGroup
	selected map[string]map[string]bool // grupo -> opção
}

// NewBuilderComposition inicia a montagem sem nenhuma opção escolhida
func NewBuilderComposition(p Product, groups []BuilderGroup) (*BuilderComposition, error) {
	if p.Mode != ModeBuilder {
		return nil, fmt.Errorf("%w: produto %s não é montável", ErrUnsupportedComposition, p.ID)
	}
	return &BuilderComposition{
		product:  p,
		groups:   append([]BuilderGroup(nil), groups...),
		selected: make(map[string]map[string]bool, len(groups)),
	}, nil
}

func (b *BuilderComposition) findGroup(groupID string) (BuilderGroup, bool) {
	for _, g := range b.groups {
		if g.ID == groupID {
			return g, true
		}
	}
	return BuilderGroup{}, false
}

// IsSelected informa se a opção está escolhida no grupo
func (b *BuilderComposition) IsSelected(groupID, optionID string) bool {
	return b.selected[groupID][optionID]
}

// ToggleOption marca ou desmarca uma opção. Desmarcar é sempre permitido;
// marcar falha quando o grupo já está no limite.
func (b *BuilderComposition) ToggleOption(groupID, optionID string) error {
	group, ok := b.findGroup(groupID)
	if !ok {
		return fmt.Errorf("%w: grupo %s", ErrUnknownOption, groupID)
	}
	found := false
	for _, o := range group.Options {
		if o.ID == optionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: opção %s", ErrUnknownOption, optionID)
	}

	current := b.selected[groupID]
	if current[optionID] {
		delete(current, optionID)
		return nil
	}
	if len(current) >= group.SelectionLimit {
		return fmt.Errorf("%w: %q permite %d", ErrSelectionLimitExceeded, group.Title, group.SelectionLimit)
	}
	if current == nil {
		current = make(map[string]bool)
		b.selected[groupID] = current
	}
	current[optionID] = true
	return nil
}

// ExtrasTotal soma o custo adicional de todas as opções escolhidas
func (b *BuilderComposition) ExtrasTotal() decimal.Decimal {
	total := decimal.Zero
	for _, g := range b.groups {
		for _, o := range g.Options {
			if b.selected[g.ID][o.ID] {
				total = total.Add(o.ExtraCost)
			}
		}
	}
	return total
}

// RulesSatisfied exige ao menos uma opção por grupo, salvo grupos com limite zero
func (b *BuilderComposition) RulesSatisfied() bool {
	for _, g := range b.groups {
		minimum := 1
		if g.SelectionLimit < minimum {
			minimum = g.SelectionLimit
		}
		if len(b.selected[g.ID]) < minimum {
			return false
		}
	}
	return true
}

// Finalize resolve a quantidade e fecha o item com preço base + adicionais
func (b *BuilderComposition) Finalize(rawQuantity string) (LineItemDraft, error) {
	if !b.RulesSatisfied() {
		return LineItemDraft{}, ErrRulesNotSatisfied
	}

	qty := resolveQuantity(b.product.SaleUnit, rawQuantity)
	extras := b.ExtrasTotal()
	unit := b.product.BasePrice.Add(extras)

	selection := make([]BuilderGroupSelection, 0, len(b.groups))
	for _, g := range b.groups {
		gs := BuilderGroupSelection{GroupID: g.ID, Title: g.Title, Options: []BuilderOptionSelection{}}
		for _, o := range g.Options {
			if b.selected[g.ID][o.ID] {
				gs.Options = append(gs.Options, BuilderOptionSelection{ID: o.ID, Name: o.Name, ExtraCost: o.ExtraCost})
			}
		}
		selection = append(selection, gs)
	}

	item := LineItemDraft{
		ProductID:   b.product.ID,
		ProductName: b.product.Name,
		Quantity:    qty,
		UnitPrice:   unit,
		TotalPrice:  unit.Mul(qty),
		Attributes: Attributes{
			Measure:            measureOf(b.product.SaleUnit),
			BuilderSelection:   selection,
			BuilderExtrasTotal: &extras,
		},
	}
	if b.product.SaleUnit == SaleUnitWeight {
		w := qty
		item.Attributes.Weight = &w
	}
	return item, nil
}
