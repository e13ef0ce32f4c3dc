package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"foodinfo/database"
	"foodinfo/internal/cache"
	"foodinfo/internal/controllers"
	"foodinfo/internal/repository"
	"foodinfo/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	ingredientRepo := repository.NewIngredientRepository(database.DB)
	measureRepo := repository.NewMeasureRepository(database.DB)
	conversionRepo := repository.NewConversionRepository(database.DB)
	fridgeRepo := repository.NewFridgeRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	tagRepo := repository.NewTagRepository(database.DB)

	// Optional recipe search cache
	var searchCache controllers.SearchCache
	if os.Getenv("REDIS_URL") != "" {
		redisClient, err := cache.NewRedisClient()
		if err != nil {
			log.Printf("Warning: recipe search cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			searchCache = redisClient
			log.Println("Recipe search cache enabled")
		}
	}

	// Controllers
	authController := controllers.NewAuthController(userRepo)
	ingredientController := controllers.NewIngredientController(ingredientRepo)
	measureController := controllers.NewMeasureController(measureRepo)
	conversionController := controllers.NewConversionController(conversionRepo)
	fridgeController := controllers.NewFridgeController(fridgeRepo)
	recipeController := controllers.NewRecipeController(recipeRepo, fridgeRepo, searchCache)
	tagController := controllers.NewTagController(tagRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Foodinfo API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterIngredientRoutes(router, ingredientController)
	routes.RegisterMeasureRoutes(router, measureController)
	routes.RegisterConversionRoutes(router, conversionController)
	routes.RegisterFridgeRoutes(router, fridgeController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterTagRoutes(router, tagController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Foodinfo API server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
