// Package pricing resolve quantidades e preços dos itens de orçamento:
// produtos simples, combos de capacidade fixa e produtos montáveis por grupos de opções.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultComboCapacity é usada quando um combo chega sem capacidade cadastrada
const DefaultComboCapacity = 9

// SaleUnit define a unidade de venda de um produto
type SaleUnit string

const (
	SaleUnitWeight SaleUnit = "kg"      // Vendido por peso
	SaleUnitUnit   SaleUnit = "unidade" // Vendido por unidade
	SaleUnitBox    SaleUnit = "caixa"   // Vendido por caixa
)

// ParseSaleUnit converte o valor do catálogo (ou seu equivalente em inglês) em SaleUnit
func ParseSaleUnit(s string) (SaleUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "weight":
		return SaleUnitWeight, true
	case "unidade", "unit":
		return SaleUnitUnit, true
	case "caixa", "box":
		return SaleUnitBox, true
	}
	return "", false
}

// CompositionMode define como o item é montado no momento do pedido
type CompositionMode string

const (
	ModeSimple  CompositionMode = "SIMPLES"
	ModeCombo   CompositionMode = "COMBO"
	ModeBuilder CompositionMode = "BUILDER"
)

// ParseCompositionMode aceita tanto os valores do banco quanto simple/combo/builder
func ParseCompositionMode(s string) (CompositionMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simples", "simple", "":
		return ModeSimple, true
	case "combo":
		return ModeCombo, true
	case "builder":
		return ModeBuilder, true
	}
	return "", false
}

// Measure é a medida gravada nos atributos do item
type Measure string

const (
	MeasureKg    Measure = "kg"
	MeasureUnit  Measure = "unidade"
	MeasureBox   Measure = "caixa"
	MeasureCombo Measure = "combo"
)

// Product é a visão de um produto do catálogo que o motor de preços precisa
type Product struct {
	ID            string
	Name          string
	BasePrice     decimal.Decimal
	SaleUnit      SaleUnit
	Mode          CompositionMode
	ComboCapacity int // 0 quando não informado
	BoxCapacity   int // itens por caixa; 0 quando o produto não declara
}

// comboCapacity retorna a capacidade do combo, aplicando o padrão quando ausente
func (p Product) comboCapacity() int {
	if p.ComboCapacity <= 0 {
		return DefaultComboCapacity
	}
	return p.ComboCapacity
}

// AllowedProduct é um produto simples que pode preencher as vagas de um combo
type AllowedProduct struct {
	ProductID string
	Name      string
	BasePrice decimal.Decimal
}

// BuilderGroup é um grupo de opções de um produto montável
type BuilderGroup struct {
	ID             string
	Title          string
	SelectionLimit int
	Options        []BuilderOption
}

// BuilderOption é uma opção de um grupo, com seu custo adicional
type BuilderOption struct {
	ID        string
	Name      string
	ExtraCost decimal.Decimal
}
