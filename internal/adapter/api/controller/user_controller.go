package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

// UserController gerencia a aprovação de cadastros
type UserController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepository user.Repository, log logger.Logger) *UserController {
	return &UserController{userRepository: userRepository, logger: log}
}

// ListPending lista os cadastros aguardando aprovação
// @Summary Listar cadastros pendentes
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/pending [get]
func (c *UserController) ListPending(ctx *gin.Context) {
	users, err := c.userRepository.ListPending(ctx)
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao listar usuários", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// SetApproval aprova ou bloqueia um usuário
// @Summary Aprovar usuário
// @Description Aprova ou bloqueia um cadastro e define o papel do usuário
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Param approval body dto.ApprovalRequest true "Decisão"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id}/approval [patch]
func (c *UserController) SetApproval(ctx *gin.Context) {
	var request dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", err)
		return
	}

	u, err := c.userRepository.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, nil, "Erro ao buscar usuário", err)
		return
	}

	role := u.Role
	if request.Role != "" {
		role = user.Role(request.Role)
	}
	if !role.IsValid() {
		badRequest(ctx, "Papel inválido", user.ErrInvalidRole)
		return
	}

	if err := c.userRepository.SetApproval(ctx, u.ID, request.Approved, role); err != nil {
		respondError(ctx, c.logger, nil, "Erro ao atualizar usuário", err)
		return
	}

	u.Approved = request.Approved
	u.Role = role
	c.logger.Info("aprovação de usuário alterada", "user_id", u.ID, "approved", u.Approved, "role", u.Role)
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
