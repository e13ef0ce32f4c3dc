package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	{
		recipeRoutes.GET("", middleware.OptionalAuthMiddleware(), recipeController.SearchRecipes)
		recipeRoutes.GET("/:id", recipeController.GetRecipeByID)
		recipeRoutes.POST("", middleware.AuthMiddleware(), recipeController.CreateRecipe)
		recipeRoutes.PUT("/:id", middleware.AuthMiddleware(), recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id", middleware.AuthMiddleware(), recipeController.DeleteRecipe)
	}
}
