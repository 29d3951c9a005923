package budget

import (
	"context"
)

// Filter define os filtros da listagem de orçamentos
type Filter struct {
	Status   Status
	ClientID string
}

// Repository define a interface para operações de repositório de orçamentos
type Repository interface {
	// Create grava o orçamento e seus itens em uma única transação
	Create(ctx context.Context, b *Budget) error

	// FindByID busca um orçamento com seus itens
	FindByID(ctx context.Context, id string) (*Budget, error)

	// List lista orçamentos, mais recentes primeiro
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Budget, int, error)

	// UpdateHeader grava status, frete, desconto e totais
	UpdateHeader(ctx context.Context, b *Budget) error

	// UpdateItem grava quantidade e total de um item e os totais do orçamento
	UpdateItem(ctx context.Context, b *Budget, item *Item) error

	// DeleteItem remove um item e grava os totais do orçamento
	DeleteItem(ctx context.Context, b *Budget, itemID string) error

	// CreateOrder grava o pedido. Retorna erro se o orçamento já tiver pedido.
	CreateOrder(ctx context.Context, o *Order) error

	// FindOrderByBudget busca o pedido gerado por um orçamento
	FindOrderByBudget(ctx context.Context, budgetID string) (*Order, error)
}

// DraftStore guarda o rascunho de orçamento de cada usuário
type DraftStore interface {
	// Load retorna ErrDraftNotFound quando o usuário não tem rascunho
	Load(ctx context.Context, userID string) (*Draft, error)
	Save(ctx context.Context, d *Draft) error
	Delete(ctx context.Context, userID string) error
}
