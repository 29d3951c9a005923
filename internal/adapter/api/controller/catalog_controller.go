package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/storage"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

const maxImageSize = 10 << 20

// CatalogController gerencia categorias, produtos e suas regras de composição
type CatalogController struct {
	catalogRepo catalog.Repository
	images      storage.ImageStore
	logger      logger.Logger
}

// NewCatalogController cria uma nova instância de CatalogController.
// images pode ser nil quando o armazenamento não está configurado.
func NewCatalogController(catalogRepo catalog.Repository, images storage.ImageStore, log logger.Logger) *CatalogController {
	return &CatalogController{catalogRepo: catalogRepo, images: images, logger: log}
}

// ListCategories lista as categorias
// @Summary Listar categorias
// @Tags catalog
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} catalog.Category
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.catalogRepo.ListCategories(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar categorias", err)
		return
	}
	if categories == nil {
		categories = []*catalog.Category{}
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory cria uma categoria
// @Summary Criar categoria
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} catalog.Category
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	category, err := catalog.NewCategory(req.Name, catalog.MeasurementUnit(strings.ToUpper(req.MeasurementUnit)))
	if err != nil {
		badRequest(ctx, "Erro ao criar categoria", err)
		return
	}
	if err := c.catalogRepo.CreateCategory(ctx, category); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar categoria", err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// ListProducts lista produtos
// @Summary Listar produtos
// @Description Lista produtos ativos; budget=true restringe aos visíveis no orçamento
// @Tags catalog
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param budget query bool false "Apenas visíveis no orçamento"
// @Param category_id query string false "Categoria"
// @Param search query string false "Busca pelo nome"
// @Param include_inactive query bool false "Incluir inativos"
// @Success 200 {array} catalog.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	filter := catalog.ProductFilter{
		CategoryID:      ctx.Query("category_id"),
		OnlyBudget:      ctx.Query("budget") == "true",
		IncludeInactive: ctx.Query("include_inactive") == "true",
		Search:          strings.TrimSpace(ctx.Query("search")),
	}
	products, err := c.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar produtos", err)
		return
	}
	if products == nil {
		products = []*catalog.Product{}
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProduct retorna um produto com os produtos permitidos (combo) ou os grupos (montável)
// @Summary Buscar produto
// @Tags catalog
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	product, err := c.catalogRepo.FindProductByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar produto", err)
		return
	}

	resp := dto.ProductDetailResponse{Product: product}
	switch {
	case product.IsCombo():
		resp.AllowedProducts, err = c.catalogRepo.ListComboProducts(ctx, product.ID)
	case product.IsBuilder():
		resp.Groups, err = c.catalogRepo.ListBuilderGroups(ctx, product.ID)
	}
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar composição do produto", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseProductKind(req dto.ProductRequest) (pricing.SaleUnit, pricing.CompositionMode, error) {
	unit, ok := pricing.ParseSaleUnit(req.Type)
	if !ok {
		return "", "", catalog.ErrInvalidSaleUnit
	}
	mode, ok := pricing.ParseCompositionMode(req.ProductType)
	if !ok {
		return "", "", catalog.ErrInvalidComposition
	}
	return unit, mode, nil
}

func applyProductExtras(p *catalog.Product, req dto.ProductRequest) {
	p.CategoryID = req.CategoryID
	p.BoxCapacity = req.BoxSize
	if req.VisibleInBudget != nil {
		p.VisibleInBudget = *req.VisibleInBudget
	}
}

// CreateProduct cria um produto
// @Summary Criar produto
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} catalog.Product
// @Failure 400 {object} dto.ErrorResponse
// @Router /products [post]
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	unit, mode, err := parseProductKind(req)
	if err != nil {
		badRequest(ctx, "Erro ao criar produto", err)
		return
	}
	product, err := catalog.NewProduct(req.Name, req.CategoryID, req.BasePrice, unit, mode, req.ComboCapacity)
	if err != nil {
		badRequest(ctx, "Erro ao criar produto", err)
		return
	}
	applyProductExtras(product, req)

	if err := c.catalogRepo.CreateProduct(ctx, product); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar produto", err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct atualiza um produto
// @Summary Atualizar produto
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} catalog.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	product, err := c.catalogRepo.FindProductByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar produto", err)
		return
	}
	unit, mode, err := parseProductKind(req)
	if err != nil {
		badRequest(ctx, "Erro ao atualizar produto", err)
		return
	}
	if err := product.Update(req.Name, req.BasePrice, unit, mode, req.ComboCapacity); err != nil {
		badRequest(ctx, "Erro ao atualizar produto", err)
		return
	}
	applyProductExtras(product, req)

	if err := c.catalogRepo.UpdateProduct(ctx, product); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar produto", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct desativa um produto
// @Summary Remover produto
// @Description Exclusão lógica; itens já orçados não são afetados
// @Tags catalog
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	if err := c.catalogRepo.DeactivateProduct(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover produto", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadImage envia a imagem do produto
// @Summary Enviar imagem do produto
// @Tags catalog
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param image formData file true "Imagem"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /products/{id}/image [post]
func (c *CatalogController) UploadImage(ctx *gin.Context) {
	if c.images == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable,
			"Upload indisponível", storage.ErrStorageDisabled.Error()))
		return
	}

	product, err := c.catalogRepo.FindProductByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar produto", err)
		return
	}

	header, err := ctx.FormFile("image")
	if err != nil {
		badRequest(ctx, "Arquivo de imagem não enviado", err)
		return
	}
	if header.Size > maxImageSize {
		badRequest(ctx, "Imagem muito grande", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		badRequest(ctx, "Erro ao ler imagem", err)
		return
	}
	defer file.Close()

	url, err := c.images.Upload(ctx, product.ID, file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidImage) {
			badRequest(ctx, "Imagem inválida", err)
			return
		}
		respondError(ctx, c.logger, nil, "Erro ao enviar imagem", err)
		return
	}

	if err := c.catalogRepo.UpdateImageURL(ctx, product.ID, url); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar imagem", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ImageResponse{ImageURL: url})
}

// SetComboProducts define os produtos permitidos de um combo
// @Summary Produtos do combo
// @Description Substitui o conjunto de produtos que podem entrar na caixa
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do combo"
// @Param products body dto.ComboProductsRequest true "Produtos permitidos"
// @Success 200 {array} pricing.AllowedProduct
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/combo-products [put]
func (c *CatalogController) SetComboProducts(ctx *gin.Context) {
	var req dto.ComboProductsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	combo, err := c.catalogRepo.FindProductByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar combo", err)
		return
	}
	if !combo.IsCombo() {
		badRequest(ctx, "Produto não é combo", pricing.ErrUnsupportedComposition)
		return
	}

	for _, id := range req.ProductIDs {
		p, err := c.catalogRepo.FindProductByID(ctx, id)
		if err != nil {
			respondError(ctx, c.logger, nil, "Erro ao buscar produto do combo", err)
			return
		}
		if p.Mode != pricing.ModeSimple {
			badRequest(ctx, "Produto inválido para combo", catalog.ErrComboNeedsSimpleProducts)
			return
		}
	}

	if err := c.catalogRepo.SetComboProducts(ctx, combo.ID, req.ProductIDs); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar produtos do combo", err)
		return
	}
	allowed, err := c.catalogRepo.ListComboProducts(ctx, combo.ID)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar produtos do combo", err)
		return
	}
	if allowed == nil {
		allowed = []pricing.AllowedProduct{}
	}
	ctx.JSON(http.StatusOK, allowed)
}

// CreateGroup cria um grupo de opções em um produto montável
// @Summary Criar grupo de opções
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param group body dto.BuilderGroupRequest true "Dados do grupo"
// @Success 201 {object} catalog.BuilderGroup
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/groups [post]
func (c *CatalogController) CreateGroup(ctx *gin.Context) {
	var req dto.BuilderGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	product, err := c.catalogRepo.FindProductByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar produto", err)
		return
	}
	if !product.IsBuilder() {
		badRequest(ctx, "Produto não é montável", pricing.ErrUnsupportedComposition)
		return
	}

	limit := req.SelectionLimit
	if limit == 0 {
		limit = 1
	}
	group, err := catalog.NewBuilderGroup(product.ID, req.Title, limit, req.DisplayOrder)
	if err != nil {
		badRequest(ctx, "Erro ao criar grupo", err)
		return
	}
	if err := c.catalogRepo.CreateBuilderGroup(ctx, group); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar grupo", err)
		return
	}
	group.Options = []catalog.BuilderOption{}
	ctx.JSON(http.StatusCreated, group)
}

// DeleteGroup remove um grupo e suas opções
// @Summary Remover grupo de opções
// @Tags catalog
// @Param Authorization header string true "Bearer token"
// @Param groupId path string true "ID do grupo"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{groupId} [delete]
func (c *CatalogController) DeleteGroup(ctx *gin.Context) {
	if err := c.catalogRepo.DeleteBuilderGroup(ctx, ctx.Param("groupId")); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover grupo", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateOption cria uma opção em um grupo
// @Summary Criar opção
// @Tags catalog
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param groupId path string true "ID do grupo"
// @Param option body dto.BuilderOptionRequest true "Dados da opção"
// @Success 201 {object} catalog.BuilderOption
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{groupId}/options [post]
func (c *CatalogController) CreateOption(ctx *gin.Context) {
	var req dto.BuilderOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	option, err := catalog.NewBuilderOption(ctx.Param("groupId"), req.Name, req.ExtraCost, req.DisplayOrder)
	if err != nil {
		badRequest(ctx, "Erro ao criar opção", err)
		return
	}
	if err := c.catalogRepo.CreateBuilderOption(ctx, option); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar opção", err)
		return
	}
	ctx.JSON(http.StatusCreated, option)
}

// DeleteOption remove uma opção
// @Summary Remover opção
// @Tags catalog
// @Param Authorization header string true "Bearer token"
// @Param optionId path string true "ID da opção"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /options/{optionId} [delete]
func (c *CatalogController) DeleteOption(ctx *gin.Context) {
	if err := c.catalogRepo.DeleteBuilderOption(ctx, ctx.Param("optionId")); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover opção", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
