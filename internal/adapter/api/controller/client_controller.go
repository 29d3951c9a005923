package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/cep"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo client.Repository
	cepLookup  cep.Lookup
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo client.Repository, cepLookup cep.Lookup, log logger.Logger) *ClientController {
	return &ClientController{clientRepo: clientRepo, cepLookup: cepLookup, logger: log}
}

func newAddress(clientID string, req dto.AddressRequest) (*client.Address, error) {
	return client.NewAddress(clientID, req.Street, req.Number, req.Complement, req.Neighborhood,
		req.City, req.State, req.ZipCode)
}

// Create cria um novo cliente, com endereços opcionais
// @Summary Criar cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} client.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	cl, err := client.NewClient(req.Name, req.Phone, req.WhatsApp)
	if err != nil {
		badRequest(ctx, "Erro ao criar cliente", err)
		return
	}

	// Validar endereços antes de gravar qualquer coisa
	addresses := make([]*client.Address, 0, len(req.Addresses))
	for _, ar := range req.Addresses {
		a, err := newAddress(cl.ID, ar)
		if err != nil {
			badRequest(ctx, "Endereço inválido", err)
			return
		}
		addresses = append(addresses, a)
	}

	if err := c.clientRepo.Create(ctx, cl); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar cliente", err)
		return
	}
	cl.Addresses = []client.Address{}
	for _, a := range addresses {
		if err := c.clientRepo.AddAddress(ctx, a); err != nil {
			respondError(ctx, c.logger, nil, "Erro ao salvar endereço", err)
			return
		}
		cl.Addresses = append(cl.Addresses, *a)
	}

	ctx.JSON(http.StatusCreated, cl)
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} client.Client
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	cl, err := c.clientRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, cl)
}

// List busca clientes por nome, telefone ou whatsapp
// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Nome, telefone ou whatsapp"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	clients, total, err := c.clientRepo.Search(ctx, ctx.Query("q"), p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar clientes", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, p))
}

// Update atualiza os dados de contato de um cliente
// @Summary Atualizar cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} client.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}

	cl, err := c.clientRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar cliente", err)
		return
	}
	if err := cl.Update(req.Name, req.Phone, req.WhatsApp); err != nil {
		badRequest(ctx, "Erro ao atualizar cliente", err)
		return
	}
	if err := c.clientRepo.Update(ctx, cl); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, cl)
}

// Delete remove um cliente sem orçamentos
// @Summary Remover cliente
// @Tags clients
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	if err := c.clientRepo.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao remover cliente", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddAddress acrescenta um endereço ao cliente
// @Summary Adicionar endereço
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param address body dto.AddressRequest true "Endereço"
// @Success 201 {object} client.Address
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses [post]
func (c *ClientController) AddAddress(ctx *gin.Context) {
	var req dto.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Dados inválidos", err)
		return
	}
	a, err := newAddress(ctx.Param("id"), req)
	if err != nil {
		badRequest(ctx, "Endereço inválido", err)
		return
	}
	if err := c.clientRepo.AddAddress(ctx, a); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao salvar endereço", err)
		return
	}
	ctx.JSON(http.StatusCreated, a)
}

// ListAddresses lista os endereços do cliente
// @Summary Listar endereços
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {array} client.Address
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses [get]
func (c *ClientController) ListAddresses(ctx *gin.Context) {
	addresses, err := c.clientRepo.ListAddresses(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar endereços", err)
		return
	}
	ctx.JSON(http.StatusOK, addresses)
}

// LookupCEP consulta o endereço de um CEP
// @Summary Consultar CEP
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cep path string true "CEP"
// @Success 200 {object} dto.CEPResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /addresses/cep/{cep} [get]
func (c *ClientController) LookupCEP(ctx *gin.Context) {
	addr, err := c.cepLookup.Find(ctx, ctx.Param("cep"))
	if err != nil {
		if matchAny(err, []error{cep.ErrInvalidCEP, cep.ErrCEPNotFound}) {
			respondError(ctx, c.logger, nil, "Erro ao consultar CEP", err)
			return
		}
		c.logger.Warn("falha na consulta de CEP", "cep", ctx.Param("cep"), "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Serviço de CEP indisponível", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.CEPResponse{
		ZipCode:      addr.ZipCode,
		Street:       addr.Street,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
	})
}
