package budget

import (
	"errors"
	"time"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

var (
	ErrDraftNotFound     = errors.New("rascunho não encontrado")
	ErrItemIndexInvalid  = errors.New("posição de item inválida")
	ErrDraftClientNotSet = errors.New("selecione o cliente e o endereço antes de salvar")
)

// Draft é o orçamento em montagem de um usuário. Os totais são sempre
// recalculados a partir dos itens, nunca armazenados.
type Draft struct {
	UserID      string                  `json:"user_id"`
	ClientID    string                  `json:"client_id,omitempty"`
	AddressID   string                  `json:"address_id,omitempty"`
	Items       []pricing.LineItemDraft `json:"items"`
	DeliveryFee decimal.Decimal         `json:"delivery_fee"`
	Discount    decimal.Decimal         `json:"discount"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// NewDraft cria um rascunho vazio para o usuário
func NewDraft(userID string) *Draft {
	return &Draft{
		UserID:    userID,
		Items:     []pricing.LineItemDraft{},
		UpdatedAt: time.Now(),
	}
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now()
}

func (d *Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.Items) {
		return ErrItemIndexInvalid
	}
	return nil
}

// SelectClient define o cliente e o endereço de entrega
func (d *Draft) SelectClient(clientID, addressID string) error {
	if clientID == "" {
		return ErrEmptyClient
	}
	if addressID == "" {
		return ErrEmptyAddress
	}
	d.ClientID = clientID
	d.AddressID = addressID
	d.touch()
	return nil
}

// AddItem acrescenta um item finalizado e retorna sua posição
func (d *Draft) AddItem(item pricing.LineItemDraft) int {
	d.Items = append(d.Items, item.Clone())
	d.touch()
	return len(d.Items) - 1
}

// ReplaceItem substitui o item na posição i
func (d *Draft) ReplaceItem(i int, item pricing.LineItemDraft) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items[i] = item.Clone()
	d.touch()
	return nil
}

// RemoveItem retira o item na posição i
func (d *Draft) RemoveItem(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	d.touch()
	return nil
}

// EditItemQuantity altera a quantidade a partir do texto digitado
func (d *Draft) EditItemQuantity(i int, raw string) error {
	return d.editItem(i, func(li pricing.LineItemDraft) (pricing.LineItemDraft, error) {
		return li.WithRawQuantity(raw)
	})
}

func (d *Draft) editItem(i int, edit func(pricing.LineItemDraft) (pricing.LineItemDraft, error)) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	updated, err := edit(d.Items[i])
	if err != nil {
		return err
	}
	d.Items[i] = updated
	d.touch()
	return nil
}

// SetDeliveryFee altera a taxa de entrega
func (d *Draft) SetDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return ErrNegativeFee
	}
	d.DeliveryFee = fee
	d.touch()
	return nil
}

// SetDiscount altera o desconto
func (d *Draft) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return ErrNegativeDiscount
	}
	d.Discount = discount
	d.touch()
	return nil
}

// Totals calcula subtotal e total do rascunho
func (d *Draft) Totals() pricing.Totals {
	return pricing.ComputeTotals(d.Items, d.DeliveryFee, d.Discount)
}

// ToBudget transforma o rascunho em orçamento pendente
func (d *Draft) ToBudget(createdBy string) (*Budget, error) {
	if d.ClientID == "" || d.AddressID == "" {
		return nil, ErrDraftClientNotSet
	}
	return NewBudget(d.ClientID, d.AddressID, createdBy, d.Items, d.DeliveryFee, d.Discount)
}
