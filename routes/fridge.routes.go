package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFridgeRoutes(router *gin.Engine, fridgeController *controllers.FridgeController) {
	fridgeRoutes := router.Group("/fridge", middleware.AuthMiddleware())
	{
		fridgeRoutes.GET("", fridgeController.ListFridges)
		fridgeRoutes.POST("", fridgeController.CreateFridge)
		fridgeRoutes.GET("/:id", fridgeController.GetFridgeByID)
		fridgeRoutes.PUT("/:id", fridgeController.UpdateFridge)
		fridgeRoutes.PUT("/:id/shelf", fridgeController.SetShelf)
		fridgeRoutes.DELETE("/:id", fridgeController.DeleteFridge)
	}
}
