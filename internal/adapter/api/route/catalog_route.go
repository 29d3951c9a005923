package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
)

// SetupCatalogRoutes configura as rotas de categorias, produtos e montagem
func SetupCatalogRoutes(router *gin.RouterGroup, catalogController *controller.CatalogController, jwtService *auth.JWTService) {
	admin := auth.RoleAuthMiddleware(string(user.RoleAdmin))

	categoryRouter := router.Group("/categories")
	categoryRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		categoryRouter.GET("", catalogController.ListCategories)
		categoryRouter.POST("", admin, catalogController.CreateCategory)
	}

	productRouter := router.Group("/products")
	productRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		// Leitura liberada para qualquer usuário aprovado
		productRouter.GET("", catalogController.ListProducts)
		productRouter.GET("/:id", catalogController.GetProduct)

		// Alterações do catálogo só para administrador
		productRouter.POST("", admin, catalogController.CreateProduct)
		productRouter.PUT("/:id", admin, catalogController.UpdateProduct)
		productRouter.DELETE("/:id", admin, catalogController.DeleteProduct)
		productRouter.POST("/:id/image", admin, catalogController.UploadImage)
		productRouter.PUT("/:id/combo-products", admin, catalogController.SetComboProducts)
		productRouter.POST("/:id/groups", admin, catalogController.CreateGroup)
	}

	groupRouter := router.Group("")
	groupRouter.Use(auth.JWTAuthMiddleware(jwtService), admin)
	{
		groupRouter.DELETE("/groups/:groupId", catalogController.DeleteGroup)
		groupRouter.POST("/groups/:groupId/options", catalogController.CreateOption)
		groupRouter.DELETE("/options/:optionId", catalogController.DeleteOption)
	}
}
