package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/controller"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/auth"
)

// SetupPricingRoutes configura a precificação avulsa de itens
func SetupPricingRoutes(router *gin.RouterGroup, pricingController *controller.PricingController, jwtService *auth.JWTService) {
	pricingRouter := router.Group("/pricing")
	pricingRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		pricingRouter.POST("/quote", pricingController.Quote)
	}
}

// SetupDraftRoutes configura as rotas do orçamento em montagem
func SetupDraftRoutes(router *gin.RouterGroup, draftController *controller.DraftController, jwtService *auth.JWTService) {
	draftRouter := router.Group("/draft")
	draftRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		draftRouter.GET("", draftController.Get)
		draftRouter.DELETE("", draftController.Discard)
		draftRouter.PUT("/client", draftController.SelectClient)
		draftRouter.PUT("/fees", draftController.SetFees)
		draftRouter.POST("/submit", draftController.Submit)

		draftRouter.POST("/items", draftController.AddItem)
		draftRouter.PUT("/items/:index", draftController.ReplaceItem)
		draftRouter.PATCH("/items/:index", draftController.PatchItem)
		draftRouter.DELETE("/items/:index", draftController.RemoveItem)
	}
}

// SetupBudgetRoutes configura as rotas de orçamentos gravados e pedidos
func SetupBudgetRoutes(router *gin.RouterGroup, budgetController *controller.BudgetController, jwtService *auth.JWTService) {
	budgetRouter := router.Group("/budgets")
	budgetRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		budgetRouter.POST("", budgetController.Create)
		budgetRouter.GET("", budgetController.List)
		budgetRouter.GET("/:id", budgetController.Get)
		budgetRouter.PATCH("/:id/status", budgetController.ChangeStatus)
		budgetRouter.PATCH("/:id/delivery-fee", budgetController.SetFees)
		budgetRouter.GET("/:id/pdf", budgetController.PDF)

		budgetRouter.PATCH("/:id/items/:itemId", budgetController.PatchItem)
		budgetRouter.DELETE("/:id/items/:itemId", budgetController.DeleteItem)

		budgetRouter.POST("/:id/order", budgetController.CreateOrder)
		budgetRouter.GET("/:id/order", budgetController.GetOrder)
	}
}
