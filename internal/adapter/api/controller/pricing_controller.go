package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

// PricingController precifica itens sem gravar nada
type PricingController struct {
	items   *ItemBuilder
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewPricingController cria uma nova instância de PricingController
func NewPricingController(items *ItemBuilder, m *metrics.Metrics, log logger.Logger) *PricingController {
	return &PricingController{items: items, metrics: m, logger: log}
}

// Quote precifica a configuração de um item
// @Summary Precificar item
// @Description Resolve quantidade, combo ou montagem e devolve o item com preço, sem gravar
// @Tags pricing
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.ItemRequest true "Configuração do item"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /pricing/quote [post]
func (c *PricingController) Quote(ctx *gin.Context) {
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
	ctx.JSON(http.StatusOK, dto.QuoteResponse{Item: item})
}
