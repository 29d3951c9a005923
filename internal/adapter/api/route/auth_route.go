package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Auto cadastro e login não requerem autenticação
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		// A renovação aceita token expirado, então valida por conta própria
		authRouter.POST("/refresh", authController.RefreshToken)

		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
