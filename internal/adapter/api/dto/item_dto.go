package dto

import (
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
)

// ItemRequest descreve a configuração de um item como o vendedor montou na tela.
// Quantidades e caixas são texto livre e seguem as regras de interpretação do motor.
type ItemRequest struct {
	ProductID        string                    `json:"product_id" binding:"required"`
	Quantity         RawText                   `json:"quantity"`
	Flavors          string                    `json:"flavors"`
	Boxes            RawText                   `json:"boxes"`
	ComboSelection   []ComboEntryRequest       `json:"combo_selection"`
	BuilderSelection []BuilderSelectionRequest `json:"builder_selection"`
}

// ComboEntryRequest representa um produto escolhido dentro do combo
type ComboEntryRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// BuilderSelectionRequest representa as opções escolhidas de um grupo
type BuilderSelectionRequest struct {
	GroupID   string   `json:"group_id" binding:"required"`
	OptionIDs []string `json:"option_ids"`
}

// QuoteResponse representa o item precificado, sem gravação
type QuoteResponse struct {
	Item pricing.LineItemDraft `json:"item"`
}

// ItemQuantityRequest representa a nova quantidade de um item finalizado
type ItemQuantityRequest struct {
	Quantity RawText `json:"quantity" binding:"required"`
}
