package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterIngredientRoutes(router *gin.Engine, ingredientController *controllers.IngredientController) {
	ingredientRoutes := router.Group("/ingredients")
	{
		ingredientRoutes.GET("", middleware.OptionalAuthMiddleware(), ingredientController.ListIngredients)
		ingredientRoutes.GET("/:id", middleware.OptionalAuthMiddleware(), ingredientController.GetIngredientByID)
		ingredientRoutes.POST("", middleware.AuthMiddleware(), ingredientController.CreateIngredient)
		ingredientRoutes.PUT("/:id", middleware.AuthMiddleware(), ingredientController.UpdateIngredient)
		ingredientRoutes.DELETE("/:id", middleware.AuthMiddleware(), ingredientController.DeleteIngredient)
	}
}
