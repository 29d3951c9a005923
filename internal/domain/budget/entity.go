package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyClient       = errors.New("cliente não informado")
	ErrEmptyAddress      = errors.New("endereço de entrega não informado")
	ErrNoItems           = errors.New("orçamento sem itens")
	ErrItemNotFound      = errors.New("item não encontrado no orçamento")
	ErrInvalidStatus     = errors.New("status de orçamento inválido")
	ErrBudgetClosed      = errors.New("orçamento concluído não pode ser alterado")
	ErrNegativeFee       = errors.New("taxa de entrega não pode ser negativa")
	ErrNegativeDiscount  = errors.New("desconto não pode ser negativo")
	ErrBudgetNotApproved = errors.New("apenas orçamentos aprovados viram pedido")
)

// Status representa a situação do orçamento
type Status string

const (
	StatusPending   Status = "pendente"
	StatusApproved  Status = "aprovado"
	StatusRejected  Status = "rejeitado"
	StatusCompleted Status = "concluido"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Item é um item de orçamento persistido, com os valores congelados na finalização
type Item struct {
	ID       string `json:"id"`
	BudgetID string `json:"budget_id"`
	pricing.LineItemDraft
	CreatedAt time.Time `json:"created_at"`
}

// Budget representa um orçamento de um cliente
type Budget struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	AddressID   string          `json:"address_id"`
	Status      Status          `json:"status"`
	Items       []Item          `json:"items"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewBudget cria um orçamento pendente a partir dos itens finalizados
func NewBudget(
	clientID string,
	addressID string,
	createdBy string,
	drafts []pricing.LineItemDraft,
	deliveryFee decimal.Decimal,
	discount decimal.Decimal,
) (*Budget, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}
	if addressID == "" {
		return nil, ErrEmptyAddress
	}
	if len(drafts) == 0 {
		return nil, ErrNoItems
	}
	if deliveryFee.IsNegative() {
		return nil, ErrNegativeFee
	}
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}

	now := time.Now()
	b := &Budget{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		AddressID:   addressID,
		Status:      StatusPending,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, d := range drafts {
		b.Items = append(b.Items, Item{
			ID:            uuid.New().String(),
			BudgetID:      b.ID,
			LineItemDraft: d.Clone(),
			CreatedAt:     now,
		})
	}
	b.Recalculate()
	return b, nil
}

// Drafts devolve os itens no formato do motor de preços
func (b *Budget) Drafts() []pricing.LineItemDraft {
	out := make([]pricing.LineItemDraft, len(b.Items))
	for i, it := range b.Items {
		out[i] = it.LineItemDraft
	}
	return out
}

// Totals recalcula os agregados sem alterar o orçamento
func (b *Budget) Totals() pricing.Totals {
	return pricing.ComputeTotals(b.Drafts(), b.DeliveryFee, b.Discount)
}

// Recalculate atualiza subtotal e total. Deve ser chamado após qualquer alteração nos itens.
func (b *Budget) Recalculate() {
	t := b.Totals()
	b.Subtotal = t.Subtotal
	b.TotalAmount = t.GrandTotal
	b.UpdatedAt = time.Now()
}

func (b *Budget) editable() error {
	if b.Status == StatusCompleted {
		return ErrBudgetClosed
	}
	return nil
}

func (b *Budget) itemIndex(itemID string) int {
	for i, it := range b.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func (b *Budget) editItem(itemID string, edit func(pricing.LineItemDraft) (pricing.LineItemDraft, error)) (*Item, error) {
	if err := b.editable(); err != nil {
		return nil, err
	}
	i := b.itemIndex(itemID)
	if i < 0 {
		return nil, ErrItemNotFound
	}
	updated, err := edit(b.Items[i].LineItemDraft)
	if err != nil {
		return nil, err
	}
	b.Items[i].LineItemDraft = updated
	b.Recalculate()
	return &b.Items[i], nil
}

// EditItemQuantity troca a quantidade a partir do texto digitado, mantendo o preço unitário
func (b *Budget) EditItemQuantity(itemID, raw string) (*Item, error) {
	return b.editItem(itemID, func(li pricing.LineItemDraft) (pricing.LineItemDraft, error) {
		return li.WithRawQuantity(raw)
	})
}

// RemoveItem retira um item do orçamento
func (b *Budget) RemoveItem(itemID string) error {
	if err := b.editable(); err != nil {
		return err
	}
	i := b.itemIndex(itemID)
	if i < 0 {
		return ErrItemNotFound
	}
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
	b.Recalculate()
	return nil
}

// SetDeliveryFee altera a taxa de entrega
func (b *Budget) SetDeliveryFee(fee decimal.Decimal) error {
	if err := b.editable(); err != nil {
		return err
	}
	if fee.IsNegative() {
		return ErrNegativeFee
	}
	b.DeliveryFee = fee
	b.Recalculate()
	return nil
}

// SetDiscount altera o desconto
func (b *Budget) SetDiscount(discount decimal.Decimal) error {
	if err := b.editable(); err != nil {
		return err
	}
	if discount.IsNegative() {
		return ErrNegativeDiscount
	}
	b.Discount = discount
	b.Recalculate()
	return nil
}

// ChangeStatus altera o status do orçamento
func (b *Budget) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, s)
	}
	b.Status = s
	b.UpdatedAt = time.Now()
	return nil
}

// Order é o pedido gerado a partir de um orçamento aprovado
type Order struct {
	ID          string          `json:"id"`
	BudgetID    string          `json:"budget_id"`
	ClientID    string          `json:"client_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewOrderFromBudget converte um orçamento aprovado em pedido pendente
func NewOrderFromBudget(b *Budget) (*Order, error) {
	if b.Status != StatusApproved {
		return nil, ErrBudgetNotApproved
	}
	return &Order{
		ID:          uuid.New().String(),
		BudgetID:    b.ID,
		ClientID:    b.ClientID,
		TotalAmount: b.TotalAmount,
		Status:      string(StatusPending),
		CreatedAt:   time.Now(),
	}, nil
}
