package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/pdf"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/repository"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

// BudgetController gerencia as requisições relacionadas a orçamentos e pedidos
type BudgetController struct {
	budgetRepo  budget.Repository
	clientRepo  client.Repository
	catalogRepo catalog.Repository
	items       *ItemBuilder
	pdf         pdf.Generator
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewBudgetController cria uma nova instância de BudgetController
func NewBudgetController(
	budgetRepo budget.Repository,
	clientRepo client.Repository,
	catalogRepo catalog.Repository,
	items *ItemBuilder,
	generator pdf.Generator,
	m *metrics.Metrics,
	log logger.Logger,
) *BudgetController {
	return &BudgetController{
		budgetRepo:  budgetRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
		items:       items,
		pdf:         generator,
		metrics:     m,
		logger:      log,
	}
}

// addressOfClient busca o endereço e confere que ele é do cliente
func addressOfClient(ctx context.Context, repo client.Repository, clientID, addressID string) (*client.Address, error) {
	addr, err := repo.FindAddress(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr.ClientID != clientID {
		return nil, fmt.Errorf("%w: endereço %s não pertence ao cliente %s", repository.ErrAddressNotFound, addressID, clientID)
	}
	return addr, nil
}

// Create precifica os itens e grava o orçamento de uma vez
// @Summary Criar orçamento
// @Description Precifica cada item pelo motor e grava o orçamento pendente
// @Tags budgets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param budget body dto.CreateBudgetRequest true "Orçamento"
// @Success 201 {object} budget.Budget
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /budgets [post]
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	if _, err := addressOfClient(ctx, c.clientRepo, req.ClientID, req.AddressID); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar endereço", err)
		return
	}

	drafts := make([]pricing.LineItemDraft, 0, len(req.Items))
	for _, ir := range req.Items {
		item, err := c.items.Build(ctx, ir)
		if err != nil {
			respondError(ctx, c.logger, c.metrics, "Erro ao precificar item", err)
			return
		}
		drafts = append(drafts, item)
	}

	userID := auth.CurrentUserID(ctx)
	b, err := budget.NewBudget(req.ClientID, req.AddressID, userID, drafts, req.DeliveryFee, req.Discount)
	if err != nil {
		badRequest(ctx, "Orçamento inválido", err)
		return
	}
	b.Notes = req.Notes

	if err := c.budgetRepo.Create(ctx, b); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar orçamento", err)
		return
	}
	c.metrics.BudgetCreated()

	c.logger.Info("orçamento criado", "budget_id", b.ID, "user_id", userID, "total", b.TotalAmount.String())
	ctx.JSON(http.StatusCreated, b)
}

// List lista orçamentos com filtros opcionais
// @Summary Listar orçamentos
// @Tags budgets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Status"
// @Param client_id query string false "ID do cliente"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.BudgetListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /budgets [get]
func (c *BudgetController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	filter := budget.Filter{ClientID: ctx.Query("client_id")}
	if s := ctx.Query("status"); s != "" {
		filter.Status = budget.Status(s)
		if !filter.Status.IsValid() {
			badRequest(ctx, "Status inválido", budget.ErrInvalidStatus)
			return
		}
	}

	budgets, total, err := c.budgetRepo.List(ctx, filter, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar orçamentos", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(budgets, total, p))
}

// Get retorna um orçamento com seus itens
// @Summary Buscar orçamento
// @Tags budgets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 200 {object} budget.Budget
// @Failure 404 {object} dto.ErrorResponse
// @Router /budgets/{id} [get]
func (c *BudgetController) Get(ctx *gin.Context) {
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// ChangeStatus altera o status de um orçamento
// @Summary Alterar status
// @Tags budgets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param status body dto.StatusRequest true "Novo status"
// @Success 200 {object} budget.Budget
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /budgets/{id}/status [patch]
func (c *BudgetController) ChangeStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	if err := b.ChangeStatus(budget.Status(req.Status)); err != nil {
		badRequest(ctx, "Status inválido", err)
		return
	}
	if err := c.budgetRepo.UpdateHeader(ctx, b); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar orçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// PatchItem altera a quantidade de um item gravado, mantendo o preço congelado
// @Summary Alterar quantidade do item
// @Tags budgets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Param quantity body dto.ItemQuantityRequest true "Nova quantidade"
// @Success 200 {object} budget.Budget
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /budgets/{id}/items/{itemId} [patch]
func (c *BudgetController) PatchItem(ctx *gin.Context) {
	var req dto.ItemQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	item, err := b.EditItemQuantity(ctx.Param("itemId"), req.Quantity.String())
	if err != nil {
		respondError(ctx, c.logger, c.metrics, "Erro ao alterar item", err)
		return
	}
	if err := c.budgetRepo.UpdateItem(ctx, b, item); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar item", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// DeleteItem remove um item do orçamento
// @Summary Remover item
// @Tags budgets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param itemId path string true "ID do item"
// @Success 200 {object} budget.Budget
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /budgets/{id}/items/{itemId} [delete]
func (c *BudgetController) DeleteItem(ctx *gin.Context) {
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	itemID := ctx.Param("itemId")
	if err := b.RemoveItem(itemID); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover item", err)
		return
	}
	if err := c.budgetRepo.DeleteItem(ctx, b, itemID); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover item", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// SetFees altera taxa de entrega e desconto de um orçamento gravado
// @Summary Taxa e desconto
// @Tags budgets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Param fees body dto.FeesRequest true "Taxa de entrega e desconto"
// @Success 200 {object} budget.Budget
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /budgets/{id}/delivery-fee [patch]
func (c *BudgetController) SetFees(ctx *gin.Context) {
	var req dto.FeesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	if req.DeliveryFee != nil {
		if err := b.SetDeliveryFee(*req.DeliveryFee); err != nil {
			respondError(ctx, c.logger, nil, "Taxa de entrega inválida", err)
			return
		}
	}
	if req.Discount != nil {
		if err := b.SetDiscount(*req.Discount); err != nil {
			respondError(ctx, c.logger, nil, "Desconto inválido", err)
			return
		}
	}
	if err := c.budgetRepo.UpdateHeader(ctx, b); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar orçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// CreateOrder gera o pedido de um orçamento aprovado
// @Summary Gerar pedido
// @Tags budgets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 201 {object} budget.Order
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /budgets/{id}/order [post]
func (c *BudgetController) CreateOrder(ctx *gin.Context) {
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	order, err := budget.NewOrderFromBudget(b)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao gerar pedido", err)
		return
	}
	if err := c.budgetRepo.CreateOrder(ctx, order); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao gerar pedido", err)
		return
	}
	c.metrics.OrderCreated()

	c.logger.Info("pedido gerado", "order_id", order.ID, "budget_id", b.ID)
	ctx.JSON(http.StatusCreated, order)
}

// GetOrder retorna o pedido gerado por um orçamento
// @Summary Buscar pedido
// @Tags budgets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 200 {object} budget.Order
// @Failure 404 {object} dto.ErrorResponse
// @Router /budgets/{id}/order [get]
func (c *BudgetController) GetOrder(ctx *gin.Context) {
	order, err := c.budgetRepo.FindOrderByBudget(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar pedido", err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// PDF gera o orçamento impresso
// @Summary PDF do orçamento
// @Tags budgets
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do orçamento"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budgets/{id}/pdf [get]
func (c *BudgetController) PDF(ctx *gin.Context) {
	b, err := c.budgetRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar orçamento", err)
		return
	}
	cl, err := c.clientRepo.FindByID(ctx, b.ClientID)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar cliente", err)
		return
	}
	addr, err := c.clientRepo.FindAddress(ctx, b.AddressID)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar endereço", err)
		return
	}

	doc := pdf.Document{
		Budget:       b,
		Client:       cl,
		Address:      addr,
		ProductNames: c.comboProductNames(ctx, b),
	}
	content, err := c.pdf.Generate(ctx, doc)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao gerar PDF", err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=orcamento-%s.pdf", b.ID))
	ctx.Data(http.StatusOK, "application/pdf", content)
}

// comboProductNames resolve os nomes dos produtos escolhidos dentro dos combos.
// Produtos que não existem mais ficam sem nome.
func (c *BudgetController) comboProductNames(ctx context.Context, b *budget.Budget) map[string]string {
	names := map[string]string{}
	for _, item := range b.Items {
		for _, entry := range item.Attributes.ComboSelection {
			if _, ok := names[entry.ProductID]; ok {
				continue
			}
			p, err := c.catalogRepo.FindProductByID(ctx, entry.ProductID)
			if err != nil {
				c.logger.Debug("produto do combo não encontrado", "product_id", entry.ProductID, "error", err)
				names[entry.ProductID] = ""
				continue
			}
			names[entry.ProductID] = p.Name
		}
	}
	return names
}
