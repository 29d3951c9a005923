package dto

import (
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest representa um orçamento enviado de uma vez
type CreateBudgetRequest struct {
	ClientID    string          `json:"client_id" binding:"required"`
	AddressID   string          `json:"address_id" binding:"required"`
	Items       []ItemRequest   `json:"items" binding:"required,min=1,dive"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    decimal.Decimal `json:"discount"`
	Notes       string          `json:"notes"`
}

// StatusRequest representa a mudança de status do orçamento
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FeesRequest representa taxa de entrega e desconto. Campos ausentes não são alterados.
type FeesRequest struct {
	DeliveryFee *decimal.Decimal `json:"delivery_fee"`
	Discount    *decimal.Decimal `json:"discount"`
}

// BudgetListResponse representa a resposta de lista de orçamentos
type BudgetListResponse struct {
	Items      []*budget.Budget `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToBudgetListResponse monta a resposta paginada de orçamentos
func ToBudgetListResponse(budgets []*budget.Budget, total int, p Pagination) BudgetListResponse {
	if budgets == nil {
		budgets = []*budget.Budget{}
	}
	return BudgetListResponse{
		Items:      budgets,
		Total:      total,
		Page:       p.Page,
		Size:       p.PageSize,
		TotalPages: calculateTotalPages(total, p.PageSize),
	}
}

// DraftClientRequest representa a escolha de cliente e endereço no rascunho
type DraftClientRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	AddressID string `json:"address_id" binding:"required"`
}

// DraftResponse traz o rascunho com os totais recalculados
type DraftResponse struct {
	*budget.Draft
	Totals pricing.Totals `json:"totals"`
}

// ToDraftResponse converte o rascunho em resposta
func ToDraftResponse(d *budget.Draft) DraftResponse {
	return DraftResponse{Draft: d, Totals: d.Totals()}
}
