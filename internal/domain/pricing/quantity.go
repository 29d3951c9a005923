package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// MaxQuantity é o maior peso ou contagem aceito em um item
var MaxQuantity = decimal.NewFromInt(100000)

// quantityScale acompanha a coluna NUMERIC(12, 3) de budget_items.quantity
const quantityScale = 3

// maxExponent limita notações como 1e-999999999, que custariam caro para comparar
const maxExponent = 18

// normalize troca a vírgula decimal por ponto
func normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}

// parseDecimal lê o número digitado, recusando expoentes fora de ±maxExponent
func parseDecimal(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(normalize(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if e := v.Exponent(); e < -maxExponent || e > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidQuantity, raw)
	}
	return v, nil
}

// inRange diz se q cabe em (0, MaxQuantity]
func inRange(q decimal.Decimal) bool {
	return q.IsPositive() && q.LessThanOrEqual(MaxQuantity)
}

// ParseQuantity interpreta um peso digitado, arredondado a gramas.
// Entrada vazia, inválida, não positiva ou acima de MaxQuantity vale 1.
func ParseQuantity(raw string) decimal.Decimal {
	q, err := parseDecimal(raw)
	if err != nil || !inRange(q) {
		return one
	}
	if q = q.Round(quantityScale); !q.IsPositive() {
		return one
	}
	return q
}

// ParseCount interpreta uma contagem de unidades ou caixas. Só aceita inteiros entre 1 e MaxQuantity; o resto vale 1.
func ParseCount(raw string) int64 {
	q, err := parseDecimal(raw)
	if err != nil || !q.IsInteger() || !inRange(q) {
		return 1
	}
	return q.IntPart()
}

// ParseAmount interpreta valores monetários livres (frete, desconto). Entrada inválida vale 0.
func ParseAmount(raw string) decimal.Decimal {
	v, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ParseFlavors quebra a lista de sabores separada por vírgula, descartando entradas vazias
func ParseFlavors(text string) []string {
	var flavors []string
	for _, f := range strings.Split(text, ",") {
		if f = strings.TrimSpace(f); f != "" {
			flavors = append(flavors, f)
		}
	}
	return flavors
}

// resolveQuantity aplica a regra de quantidade da unidade de venda
func resolveQuantity(unit SaleUnit, raw string) decimal.Decimal {
	if unit == SaleUnitWeight {
		return ParseQuantity(raw)
	}
	return decimal.NewFromInt(ParseCount(raw))
}

func measureOf(unit SaleUnit) Measure {
	switch unit {
	case SaleUnitWeight:
		return MeasureKg
	case SaleUnitBox:
		return MeasureBox
	}
	return MeasureUnit
}

// Resolve calcula quantidade, preço unitário e total de um produto simples.
// Para caixas com capacidade declarada, a lista de sabores não pode passar de capacidade × caixas.
func Resolve(p Product, rawQuantity, flavorsText string) (LineItemDraft, error) {
	if p.Mode != ModeSimple && p.Mode != "" {
		return LineItemDraft{}, fmt.Errorf("%w: %s", ErrUnsupportedComposition, p.Mode)
	}

	qty := resolveQuantity(p.SaleUnit, rawQuantity)
	item := LineItemDraft{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   p.BasePrice,
		TotalPrice:  p.BasePrice.Mul(qty),
		Attributes:  Attributes{Measure: measureOf(p.SaleUnit)},
	}

	switch p.SaleUnit {
	case SaleUnitWeight:
		w := qty
		item.Attributes.Weight = &w
	case SaleUnitBox:
		flavors := ParseFlavors(flavorsText)
		if p.BoxCapacity > 0 {
			limit := int64(p.BoxCapacity) * qty.IntPart()
			if int64(len(flavors)) > limit {
				return LineItemDraft{}, fmt.Errorf("%w: %d sabores para no máximo %d", ErrCapacityExceeded, len(flavors), limit)
			}
		}
		if len(flavors) > 0 {
			item.Attributes.Flavors = flavors
			item.Attributes.BoxCapacity = p.BoxCapacity
		}
	}

	return item, nil
}
