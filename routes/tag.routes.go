package routes

import (
	"foodinfo/internal/controllers"
	"foodinfo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(router *gin.Engine, tagController *controllers.TagController) {
	tagRoutes := router.Group("/tags")
	{
		tagRoutes.GET("", tagController.ListTags)
		tagRoutes.GET("/:id", tagController.GetTagByID)
		tagRoutes.POST("", middleware.AuthMiddleware(), tagController.CreateTag)
		tagRoutes.PUT("/:id", middleware.AuthMiddleware(), tagController.UpdateTag)
		tagRoutes.DELETE("/:id", middleware.AuthMiddleware(), tagController.DeleteTag)
	}

	categoryRoutes := router.Group("/tag-categories")
	{
		categoryRoutes.GET("", tagController.ListTagCategories)
		categoryRoutes.POST("", middleware.AuthMiddleware(), tagController.CreateTagCategory)
		categoryRoutes.DELETE("/:id", middleware.AuthMiddleware(), tagController.DeleteTagCategory)
	}
}
