package dto

import (
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// CategoryRequest representa os dados de uma categoria
type CategoryRequest struct {
	Name            string `json:"name" binding:"required"`
	MeasurementUnit string `json:"measurement_unit" binding:"required"`
}

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	CategoryID      string          `json:"category_id"`
	BasePrice       decimal.Decimal `json:"base_price"`
	Type            string          `json:"type" binding:"required"`
	ProductType     string          `json:"product_type"`
	ComboCapacity   *int            `json:"combo_capacity"`
	BoxSize         int             `json:"box_size"`
	VisibleInBudget *bool           `json:"visible_in_budget"`
}

// ProductDetailResponse traz o produto com os dados de composição
type ProductDetailResponse struct {
	*catalog.Product
	AllowedProducts []pricing.AllowedProduct `json:"allowed_products,omitempty"`
	Groups          []catalog.BuilderGroup   `json:"groups,omitempty"`
}

// ComboProductsRequest representa o conjunto de produtos permitidos de um combo
type ComboProductsRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

// BuilderGroupRequest representa os dados de um grupo de opções
type BuilderGroupRequest struct {
	Title          string `json:"title" binding:"required"`
	SelectionLimit int    `json:"selection_limit"`
	DisplayOrder   int    `json:"display_order"`
}

// BuilderOptionRequest representa os dados de uma opção de grupo
type BuilderOptionRequest struct {
	Name         string          `json:"name" binding:"required"`
	ExtraCost    decimal.Decimal `json:"extra_cost"`
	DisplayOrder int             `json:"display_order"`
}

// ImageResponse representa a URL pública da imagem enviada
type ImageResponse struct {
	ImageURL string `json:"image_url"`
}
