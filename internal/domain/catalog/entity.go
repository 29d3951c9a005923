package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName                = errors.New("nome não pode ser vazio")
	ErrNegativePrice            = errors.New("preço base não pode ser negativo")
	ErrInvalidSaleUnit          = errors.New("unidade de venda inválida")
	ErrInvalidComposition       = errors.New("modo de composição inválido")
	ErrComboCapacityRequired    = errors.New("combo precisa de capacidade positiva")
	ErrCapacityOnlyForCombo     = errors.New("capacidade só pode ser informada para combos")
	ErrInvalidSelectionLimit    = errors.New("limite de seleção deve ser maior ou igual a 1")
	ErrNegativeExtraCost        = errors.New("custo adicional não pode ser negativo")
	ErrInvalidMeasurementUnit   = errors.New("unidade de medida inválida")
	ErrComboNeedsSimpleProducts = errors.New("combo só aceita produtos simples")
	ErrProductUnavailable       = errors.New("produto indisponível para orçamento")
)

// MeasurementUnit define a unidade de medida exibida pela categoria
type MeasurementUnit string

const (
	MeasurementKg      MeasurementUnit = "KG"
	MeasurementUnidade MeasurementUnit = "UNIDADE"
	MeasurementCaixa   MeasurementUnit = "CAIXA"
	MeasurementPacote  MeasurementUnit = "PACOTE"
)

// Category agrupa produtos para exibição. Não interfere no preço.
type Category struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MeasurementUnit MeasurementUnit `json:"measurement_unit"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(name string, unit MeasurementUnit) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	switch unit {
	case MeasurementKg, MeasurementUnidade, MeasurementCaixa, MeasurementPacote:
	default:
		return nil, ErrInvalidMeasurementUnit
	}
	return &Category{
		ID:              uuid.New().String(),
		Name:            name,
		MeasurementUnit: unit,
		CreatedAt:       time.Now(),
	}, nil
}

// Product representa um produto do catálogo da confeitaria
type Product struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	ImageURL        string                  `json:"image_url"`
	CategoryID      string                  `json:"category_id"`
	BasePrice       decimal.Decimal         `json:"base_price"`
	SaleUnit        pricing.SaleUnit        `json:"type"`
	Mode            pricing.CompositionMode `json:"product_type"`
	ComboCapacity   *int                    `json:"combo_capacity,omitempty"`
	BoxCapacity     int                     `json:"box_size,omitempty"` // itens por caixa, opcional
	VisibleInBudget bool                    `json:"visible_in_budget"`
	Active          bool                    `json:"active"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// NewProduct cria um novo produto validando preço e capacidade
func NewProduct(
	name string,
	categoryID string,
	basePrice decimal.Decimal,
	saleUnit pricing.SaleUnit,
	mode pricing.CompositionMode,
	comboCapacity *int,
) (*Product, error) {
	now := time.Now()
	p := &Product{
		ID:              uuid.New().String(),
		CategoryID:      categoryID,
		VisibleInBudget: true,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := p.Update(name, basePrice, saleUnit, mode, comboCapacity); err != nil {
		return nil, err
	}
	return p, nil
}

// Update altera os dados comerciais do produto
func (p *Product) Update(
	name string,
	basePrice decimal.Decimal,
	saleUnit pricing.SaleUnit,
	mode pricing.CompositionMode,
	comboCapacity *int,
) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if basePrice.IsNegative() {
		return ErrNegativePrice
	}
	if _, ok := pricing.ParseSaleUnit(string(saleUnit)); !ok {
		return ErrInvalidSaleUnit
	}
	switch mode {
	case pricing.ModeSimple, pricing.ModeCombo, pricing.ModeBuilder:
	default:
		return ErrInvalidComposition
	}

	// Capacidade existe se, e somente se, o produto é combo
	if mode == pricing.ModeCombo {
		if comboCapacity == nil || *comboCapacity <= 0 {
			return ErrComboCapacityRequired
		}
	} else if comboCapacity != nil {
		return ErrCapacityOnlyForCombo
	}

	p.Name = name
	p.BasePrice = basePrice
	p.SaleUnit = saleUnit
	p.Mode = mode
	p.ComboCapacity = comboCapacity
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate faz a exclusão lógica do produto
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// IsCombo verifica se o produto é um combo
func (p *Product) IsCombo() bool {
	return p.Mode == pricing.ModeCombo
}

// IsBuilder verifica se o produto é montável
func (p *Product) IsBuilder() bool {
	return p.Mode == pricing.ModeBuilder
}

// CheckAvailable verifica se o produto pode entrar em um orçamento
func (p *Product) CheckAvailable() error {
	if !p.Active {
		return ErrProductUnavailable
	}
	return nil
}

// Pricing converte o produto para a visão usada pelo motor de preços
func (p *Product) Pricing() pricing.Product {
	out := pricing.Product{
		ID:          p.ID,
		Name:        p.Name,
		BasePrice:   p.BasePrice,
		SaleUnit:    p.SaleUnit,
		Mode:        p.Mode,
		BoxCapacity: p.BoxCapacity,
	}
	if p.ComboCapacity != nil {
		out.ComboCapacity = *p.ComboCapacity
	}
	return out
}

// BuilderGroup é um grupo de opções de um produto montável
type BuilderGroup struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Title          string          `json:"title"`
	SelectionLimit int             `json:"selection_limit"`
	DisplayOrder   int             `json:"display_order"`
	Options        []BuilderOption `json:"options"`
}

// BuilderOption é uma opção de um grupo
type BuilderOption struct {
	ID           string          `json:"id"`
	GroupID      string          `json:"group_id"`
	Name         string          `json:"name"`
	ExtraCost    decimal.Decimal `json:"extra_cost"`
	DisplayOrder int             `json:"display_order"`
}

// NewBuilderGroup cria um grupo de opções
func NewBuilderGroup(productID, title string, selectionLimit, displayOrder int) (*BuilderGroup, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyName
	}
	if selectionLimit < 1 {
		return nil, ErrInvalidSelectionLimit
	}
	return &BuilderGroup{
		ID:             uuid.New().String(),
		ProductID:      productID,
		Title:          title,
		SelectionLimit: selectionLimit,
		DisplayOrder:   displayOrder,
	}, nil
}

// NewBuilderOption cria uma opção de grupo
func NewBuilderOption(groupID, name string, extraCost decimal.Decimal, displayOrder int) (*BuilderOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if extraCost.IsNegative() {
		return nil, ErrNegativeExtraCost
	}
	return &BuilderOption{
		ID:           uuid.New().String(),
		GroupID:      groupID,
		Name:         name,
		ExtraCost:    extraCost,
		DisplayOrder: displayOrder,
	}, nil
}

// PricingGroups converte os grupos para o formato do motor de preços, mantendo a ordem
func PricingGroups(groups []BuilderGroup) []pricing.BuilderGroup {
	out := make([]pricing.BuilderGroup, 0, len(groups))
	for _, g := range groups {
		pg := pricing.BuilderGroup{ID: g.ID, Title: g.Title, SelectionLimit: g.SelectionLimit}
		for _, o := range g.Options {
			pg.Options = append(pg.Options, pricing.BuilderOption{ID: o.ID, Name: o.Name, ExtraCost: o.ExtraCost})
		}
		out = append(out, pg)
	}
	return out
}
