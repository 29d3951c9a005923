package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
)

// SetupClientRoutes configura as rotas de clientes e endereços
func SetupClientRoutes(router *gin.RouterGroup, clientController *controller.ClientController, jwtService *auth.JWTService) {
	clientRouter := router.Group("/clients")
	clientRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		clientRouter.POST("", clientController.Create)
		clientRouter.GET("", clientController.List)
		clientRouter.GET("/:id", clientController.Get)
		clientRouter.PUT("/:id", clientController.Update)
		clientRouter.DELETE("/:id", clientController.Delete)

		clientRouter.POST("/:id/addresses", clientController.AddAddress)
		clientRouter.GET("/:id/addresses", clientController.ListAddresses)
	}

	router.GET("/addresses/cep/:cep", auth.JWTAuthMiddleware(jwtService), clientController.LookupCEP)
}
