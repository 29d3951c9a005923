package pricing

import "github.com/shopspring/decimal"

// Totals são os valores agregados de um orçamento
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    decimal.Decimal `json:"discount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// Subtotal soma o total de cada item
func Subtotal(items []LineItemDraft) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	return sum
}

// GrandTotal = subtotal + frete - desconto. Resultados negativos não são corrigidos.
func GrandTotal(items []LineItemDraft, deliveryFee, discount decimal.Decimal) decimal.Decimal {
	return Subtotal(items).Add(deliveryFee).Sub(discount)
}

// ComputeTotals recalcula todos os agregados de uma vez
func ComputeTotals(items []LineItemDraft, deliveryFee, discount decimal.Decimal) Totals {
	subtotal := Subtotal(items)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		GrandTotal:  subtotal.Add(deliveryFee).Sub(discount),
	}
}
