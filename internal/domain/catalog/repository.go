package catalog

import (
	"context"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
)

// ProductFilter define os filtros da listagem de produtos
type ProductFilter struct {
	CategoryID      string
	OnlyBudget      bool // apenas produtos visíveis no orçamento
	IncludeInactive bool
	Search          string
}

// Repository define a interface para operações de repositório do catálogo
type Repository interface {
	// CreateCategory cria uma categoria
	CreateCategory(ctx context.Context, c *Category) error

	// ListCategories lista as categorias em ordem alfabética
	ListCategories(ctx context.Context) ([]*Category, error)

	// CreateProduct cria um novo produto
	CreateProduct(ctx context.Context, p *Product) error

	// UpdateProduct atualiza um produto existente
	UpdateProduct(ctx context.Context, p *Product) error

	// FindProductByID busca um produto pelo ID
	FindProductByID(ctx context.Context, id string) (*Product, error)

	// ListProducts lista produtos conforme o filtro
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// DeactivateProduct faz a exclusão lógica de um produto
	DeactivateProduct(ctx context.Context, id string) error

	// UpdateImageURL grava a URL pública da imagem do produto
	UpdateImageURL(ctx context.Context, id, url string) error

	// SetComboProducts substitui o conjunto de produtos permitidos de um combo
	SetComboProducts(ctx context.Context, comboID string, productIDs []string) error

	// ListComboProducts lista os produtos permitidos de um combo
	ListComboProducts(ctx context.Context, comboID string) ([]pricing.AllowedProduct, error)

	// ListBuilderGroups lista os grupos de um produto montável com suas opções
	ListBuilderGroups(ctx context.Context, productID string) ([]BuilderGroup, error)

	// CreateBuilderGroup cria um grupo de opções
	CreateBuilderGroup(ctx context.Context, g *BuilderGroup) error

	// DeleteBuilderGroup remove um grupo e suas opções
	DeleteBuilderGroup(ctx context.Context, id string) error

	// CreateBuilderOption cria uma opção
	CreateBuilderOption(ctx context.Context, o *BuilderOption) error

	// DeleteBuilderOption remove uma opção
	DeleteBuilderOption(ctx context.Context, id string) error
}
