package controller

import (
	"context"
	"fmt"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
)

// ItemBuilder transforma a configuração enviada pela tela em item precificado.
// A configuração é reproduzida nas máquinas de estado do motor, um incremento
// por unidade do combo e um toggle por opção, para que as rejeições sejam as
// mesmas do fluxo interativo.
type ItemBuilder struct {
	catalog catalog.Repository
	metrics *metrics.Metrics
}

// NewItemBuilder cria um novo ItemBuilder
func NewItemBuilder(catalogRepo catalog.Repository, m *metrics.Metrics) *ItemBuilder {
	return &ItemBuilder{catalog: catalogRepo, metrics: m}
}

// Build carrega o produto e resolve o item conforme o modo de composição
func (b *ItemBuilder) Build(ctx context.Context, req dto.ItemRequest) (pricing.LineItemDraft, error) {
	product, err := b.catalog.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return pricing.LineItemDraft{}, err
	}
	if err := product.CheckAvailable(); err != nil {
		return pricing.LineItemDraft{}, err
	}

	var item pricing.LineItemDraft
	switch product.Mode {
	case pricing.ModeCombo:
		item, err = b.buildCombo(ctx, product, req)
	case pricing.ModeBuilder:
		item, err = b.buildComposition(ctx, product, req)
	default:
		item, err = pricing.Resolve(product.Pricing(), req.Quantity.String(), req.Flavors)
	}
	if err != nil {
		return pricing.LineItemDraft{}, err
	}

	b.metrics.ItemPriced(string(product.Mode))
	return item, nil
}

func (b *ItemBuilder) buildCombo(ctx context.Context, product *catalog.Product, req dto.ItemRequest) (pricing.LineItemDraft, error) {
	allowed, err := b.catalog.ListComboProducts(ctx, product.ID)
	if err != nil {
		return pricing.LineItemDraft{}, err
	}
	selection, err := pricing.NewComboSelection(product.Pricing(), allowed)
	if err != nil {
		return pricing.LineItemDraft{}, err
	}

	// o número de caixas pode vir em boxes ou em quantity
	boxes := req.Boxes
	if boxes == "" {
		boxes = req.Quantity
	}
	selection.SetBoxCount(boxes.String())

	for _, entry := range req.ComboSelection {
		if entry.Quantity < 0 {
			return pricing.LineItemDraft{}, fmt.Errorf("%w: %d", pricing.ErrInvalidQuantity, entry.Quantity)
		}
		for i := 0; i < entry.Quantity; i++ {
			if err := selection.Increment(entry.ProductID); err != nil {
				return pricing.LineItemDraft{}, err
			}
		}
	}
	return selection.Finalize()
}

func (b *ItemBuilder) buildComposition(ctx context.Context, product *catalog.Product, req dto.ItemRequest) (pricing.LineItemDraft, error) {
	groups, err := b.catalog.ListBuilderGroups(ctx, product.ID)
	if err != nil {
		return pricing.LineItemDraft{}, err
	}
	composition, err := pricing.NewBuilderComposition(product.Pricing(), catalog.PricingGroups(groups))
	if err != nil {
		return pricing.LineItemDraft{}, err
	}

	for _, group := range req.BuilderSelection {
		for _, optionID := range group.OptionIDs {
			if err := composition.ToggleOption(group.GroupID, optionID); err != nil {
				return pricing.LineItemDraft{}, err
			}
		}
	}
	return composition.Finalize(req.Quantity.String())
}
