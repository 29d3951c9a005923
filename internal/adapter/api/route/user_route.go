package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
)

// SetupUserRoutes configura as rotas de aprovação de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService) {
	userRouter := router.Group("/users")
	{
		// Rotas que requerem autenticação e autorização de administrador
		userRouter.Use(auth.JWTAuthMiddleware(jwtService))
		userRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))

		userRouter.GET("/pending", userController.ListPending)
		userRouter.PATCH("/:id/approval", userController.SetApproval)
	}
}
