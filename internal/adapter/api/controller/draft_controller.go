package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

// DraftController gerencia o orçamento em montagem do usuário autenticado
type DraftController struct {
	drafts     budget.DraftStore
	clientRepo client.Repository
	budgetRepo budget.Repository
	items      *ItemBuilder
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewDraftController cria uma nova instância de DraftController
func NewDraftController(
	drafts budget.DraftStore,
	clientRepo client.Repository,
	budgetRepo budget.Repository,
	items *ItemBuilder,
	m *metrics.Metrics,
	log logger.Logger,
) *DraftController {
	return &DraftController{
		drafts:     drafts,
		clientRepo: clientRepo,
		budgetRepo: budgetRepo,
		items:      items,
		metrics:    m,
		logger:     log,
	}
}

// load devolve o rascunho do usuário ou um rascunho vazio
func (c *DraftController) load(ctx *gin.Context) (*budget.Draft, error) {
	userID := auth.CurrentUserID(ctx)
	d, err := c.drafts.Load(ctx, userID)
	if errors.Is(err, budget.ErrDraftNotFound) {
		return budget.NewDraft(userID), nil
	}
	return d, err
}

func (c *DraftController) save(ctx *gin.Context, d *budget.Draft, status int) {
	if err := c.drafts.Save(ctx, d); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar rascunho", err)
		return
	}
	ctx.JSON(status, dto.ToDraftResponse(d))
}

func itemIndex(ctx *gin.Context) (int, error) {
	i, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", budget.ErrItemIndexInvalid, ctx.Param("index"))
	}
	return i, nil
}

// Get retorna o rascunho atual
// @Summary Rascunho atual
// @Tags draft
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DraftResponse
// @Router /draft [get]
func (c *DraftController) Get(ctx *gin.Context) {
	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

// SelectClient define o cliente e o endereço de entrega do rascunho
// @Summary Selecionar cliente
// @Tags draft
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.DraftClientRequest true "Cliente e endereço"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /draft/client [put]
func (c *DraftController) SelectClient(ctx *gin.Context) {
	var req dto.DraftClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	if _, err := addressOfClient(ctx, c.clientRepo, req.ClientID, req.AddressID); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar endereço", err)
		return
	}

	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	if err := d.SelectClient(req.ClientID, req.AddressID); err != nil {
		badRequest(ctx, "Cliente inválido", err)
		return
	}
	c.save(ctx, d, http.StatusOK)
}

// AddItem precifica um item e o acrescenta ao rascunho
// @Summary Adicionar item
// @Tags draft
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.ItemRequest true "Configuração do item"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /draft/items [post]
func (c *DraftController) AddItem(ctx *gin.Context) {
	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	item, err := c.items.Build(ctx, req)
	if err != nil {
		respondError(ctx, c.logger, c.metrics, "Erro ao precificar item", err)
		return
	}

	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	d.AddItem(item)
	c.save(ctx, d, http.StatusCreated)
}

// ReplaceItem precifica de novo a configuração e substitui o item na posição
// @Summary Substituir item
// @Tags draft
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param index path int true "Posição do item"
// @Param item body dto.ItemRequest true "Configuração do item"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /draft/items/{index} [put]
func (c *DraftController) ReplaceItem(ctx *gin.Context) {
	i, err := itemIndex(ctx)
	if err != nil {
		badRequest(ctx, "Posição inválida", err)
		return
	}
	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	item, err := c.items.Build(ctx, req)
	if err != nil {
		respondError(ctx, c.logger, c.metrics, "Erro ao precificar item", err)
		return
	}

	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	if err := d.ReplaceItem(i, item); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao substituir item", err)
		return
	}
	c.save(ctx, d, http.StatusOK)
}

// PatchItem altera a quantidade de um item do rascunho
// @Summary Alterar quantidade
// @Tags draft
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param index path int true "Posição do item"
// @Param quantity body dto.ItemQuantityRequest true "Nova quantidade"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /draft/items/{index} [patch]
func (c *DraftController) PatchItem(ctx *gin.Context) {
	i, err := itemIndex(ctx)
	if err != nil {
		badRequest(ctx, "Posição inválida", err)
		return
	}
	var req dto.ItemQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	if err := d.EditItemQuantity(i, req.Quantity.String()); err != nil {
		respondError(ctx, c.logger, c.metrics, "Erro ao alterar quantidade", err)
		return
	}
	c.save(ctx, d, http.StatusOK)
}

// RemoveItem retira um item do rascunho
// @Summary Remover item
// @Tags draft
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param index path int true "Posição do item"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /draft/items/{index} [delete]
func (c *DraftController) RemoveItem(ctx *gin.Context) {
	i, err := itemIndex(ctx)
	if err != nil {
		badRequest(ctx, "Posição inválida", err)
		return
	}
	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	if err := d.RemoveItem(i); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover item", err)
		return
	}
	c.save(ctx, d, http.StatusOK)
}

// SetFees altera taxa de entrega e desconto do rascunho
// @Summary Taxa e desconto
// @Tags draft
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param fees body dto.FeesRequest true "Taxa de entrega e desconto"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /draft/fees [put]
func (c *DraftController) SetFees(ctx *gin.Context) {
	var req dto.FeesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}
	if req.DeliveryFee != nil {
		if err := d.SetDeliveryFee(*req.DeliveryFee); err != nil {
			badRequest(ctx, "Taxa de entrega inválida", err)
			return
		}
	}
	if req.Discount != nil {
		if err := d.SetDiscount(*req.Discount); err != nil {
			badRequest(ctx, "Desconto inválido", err)
			return
		}
	}
	c.save(ctx, d, http.StatusOK)
}

// Discard descarta o rascunho
// @Summary Descartar rascunho
// @Tags draft
// @Param Authorization header string true "Bearer token"
// @Success 204
// @Router /draft [delete]
func (c *DraftController) Discard(ctx *gin.Context) {
	if err := c.drafts.Delete(ctx, auth.CurrentUserID(ctx)); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao descartar rascunho", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Submit grava o rascunho como orçamento pendente e o descarta
// @Summary Salvar orçamento
// @Tags draft
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 201 {object} budget.Budget
// @Failure 400 {object} dto.ErrorResponse
// @Router /draft/submit [post]
func (c *DraftController) Submit(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)
	d, err := c.load(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao carregar rascunho", err)
		return
	}

	b, err := d.ToBudget(userID)
	if err != nil {
		respondError(ctx, c.logger, nil, "Rascunho incompleto", err)
		return
	}
	if err := c.budgetRepo.Create(ctx, b); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar orçamento", err)
		return
	}
	c.metrics.BudgetCreated()

	// o orçamento já foi gravado; um rascunho que sobrar só é sobrescrito depois
	if err := c.drafts.Delete(ctx, userID); err != nil {
		c.logger.Warn("erro ao descartar rascunho", "user_id", userID, "error", err)
	}

	c.logger.Info("orçamento criado", "budget_id", b.ID, "user_id", userID, "total", b.TotalAmount.String())
	ctx.JSON(http.StatusCreated, b)
}
