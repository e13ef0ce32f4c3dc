package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMeasureRoutes(router *gin.Engine, measureController *controllers.MeasureController) {
	measureRoutes := router.Group("/measures")
	{
		measureRoutes.GET("", measureController.ListMeasures)
		measureRoutes.GET("/:id", measureController.GetMeasureByID)
		measureRoutes.POST("", middleware.AuthMiddleware(), measureController.CreateMeasure)
		measureRoutes.PUT("/:id", middleware.AuthMiddleware(), measureController.UpdateMeasure)
		measureRoutes.DELETE("/:id", middleware.AuthMiddleware(), measureController.DeleteMeasure)
	}
}
