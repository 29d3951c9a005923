package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComboSelection guarda a escolha em andamento de um combo.
// A soma das quantidades nunca passa da capacidade.
type ComboSelection struct {
	product  Product
	allowed  []AllowedProduct
	counts   map[string]int
	boxCount int64
}

// NewComboSelection inicia a seleção de um combo com uma caixa e nenhum produto escolhido
func NewComboSelection(p Product, allowed []AllowedProduct) (*ComboSelection, error) {
	if p.Mode != ModeCombo {
		return nil, fmt.Errorf("%w: produto %s não é combo", ErrUnsupportedComposition, p.ID)
	}
	if len(allowed) == 0 {
		return nil, ErrNoAllowedProducts
	}
	return &ComboSelection{
		product:  p,
		allowed:  append([]AllowedProduct(nil), allowed...),
		counts:   make(map[string]int, len(allowed)),
		boxCount: 1,
	}, nil
}

func (s *ComboSelection) isAllowed(productID string) bool {
	for _, a := range s.allowed {
		if a.ProductID == productID {
			return true
		}
	}
	return false
}

// Capacity retorna a capacidade da caixa
func (s *ComboSelection) Capacity() int {
	return s.product.comboCapacity()
}

// Selected retorna quantos itens já foram escolhidos
func (s *ComboSelection) Selected() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Remaining retorna quantas vagas ainda estão livres
func (s *ComboSelection) Remaining() int {
	return s.Capacity() - s.Selected()
}

// Count retorna a quantidade escolhida de um produto
func (s *ComboSelection) Count(productID string) int {
	return s.counts[productID]
}

// BoxCount retorna o número de caixas
func (s *ComboSelection) BoxCount() int64 {
	return s.boxCount
}

// SetBoxCount define o número de caixas a partir da entrada do usuário
func (s *ComboSelection) SetBoxCount(raw string) {
	s.boxCount = ParseCount(raw)
}

// Increment adiciona uma unidade do produto à caixa
func (s *ComboSelection) Increment(productID string) error {
	if !s.isAllowed(productID) {
		return fmt.Errorf("%w: %s", ErrProductNotAllowed, productID)
	}
	if s.Selected()+1 > s.Capacity() {
		return fmt.Errorf("%w: máximo de %d itens", ErrCapacityExceeded, s.Capacity())
	}
	s.counts[productID]++
	return nil
}

// Decrement remove uma unidade do produto; não faz nada se ela já estiver zerada
func (s *ComboSelection) Decrement(productID string) {
	if s.counts[productID] == 0 {
		return
	}
	s.counts[productID]--
	if s.counts[productID] == 0 {
		delete(s.counts, productID)
	}
}

// Finalize fecha o combo. A caixa precisa estar exatamente cheia.
func (s *ComboSelection) Finalize() (LineItemDraft, error) {
	if selected := s.Selected(); selected != s.Capacity() {
		return LineItemDraft{}, fmt.Errorf("%w: %d de %d itens", ErrCapacityMismatch, selected, s.Capacity())
	}

	entries := make([]ComboEntry, 0, len(s.counts))
	for _, a := range s.allowed {
		if c := s.counts[a.ProductID]; c > 0 {
			entries = append(entries, ComboEntry{ProductID: a.ProductID, Quantity: c})
		}
	}

	boxes := decimal.NewFromInt(s.boxCount)
	return LineItemDraft{
		ProductID:   s.product.ID,
		ProductName: s.product.Name,
		Quantity:    boxes,
		UnitPrice:   s.product.BasePrice,
		TotalPrice:  s.product.BasePrice.Mul(boxes),
		Attributes: Attributes{
			Measure:        MeasureCombo,
			ComboSelection: entries,
		},
	}, nil
}
