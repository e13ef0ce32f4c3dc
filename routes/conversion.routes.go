package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterConversionRoutes(router *gin.Engine, conversionController *controllers.ConversionController) {
	conversionRoutes := router.Group("/conversions")
	{
		conversionRoutes.GET("", conversionController.ListConversions)
		conversionRoutes.GET("/:utensil_id/:ingredient_id", conversionController.GetConversionByPair)
		conversionRoutes.POST("", middleware.AuthMiddleware(), conversionController.CreateConversion)
		conversionRoutes.PUT("/:id", middleware.AuthMiddleware(), conversionController.UpdateConversion)
		conversionRoutes.DELETE("/:id", middleware.AuthMiddleware(), conversionController.DeleteConversion)
	}
}
