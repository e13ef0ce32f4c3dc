package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"foodinfo/internal/middleware"
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"
	"foodinfo/internal/query"
	"foodinfo/internal/repository"
	"foodinfo/internal/serializers"

	"github.com/gin-gonic/gin"
)

// SearchCache is the optional read-through cache in front of the recipe
// search. A nil cache disables caching.
type SearchCache interface {
	GetSearch(key string) (json.RawMessage, bool)
	StoreSearch(key string, payload json.RawMessage, ttl time.Duration) error
}

const searchCacheTTL = 30 * time.Second

type RecipeController struct {
	repo       repository.RecipeRepository
	fridgeRepo repository.FridgeRepository
	cache      SearchCache
}

func NewRecipeController(repo repository.RecipeRepository, fridgeRepo repository.FridgeRepository, cache SearchCache) *RecipeController {
	return &RecipeController{repo: repo, fridgeRepo: fridgeRepo, cache: cache}
}

// SearchRecipes godoc
// @Summary Search recipes
// @Description Filter recipes by title substring, calorie range, author, tags, ingredient presence, or fridge contents. absentLimit switches to tolerance matching: a recipe qualifies when at most that many of its ingredients are missing from the requested ingredients plus the fridge shelf. expanded=false returns the compact projection.
// @Tags recipe
// @Produce json
// @Param title query string false "Substring filter on the title"
// @Param caloriesAbove query number false "Inclusive lower calorie bound"
// @Param caloriesBelow query number false "Inclusive upper calorie bound"
// @Param ingredients query string false "Comma separated ingredient ids"
// @Param userId query int false "Recipe author id"
// @Param fridgeId query int false "Fridge whose shelf supplies available ingredients (owner only)"
// @Param tags query string false "Comma separated tag ids"
// @Param absentLimit query int false "Maximum tolerated count of missing ingredients"
// @Param expanded query string false "Set to false for the compact projection"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Malformed filter combination"
// @Failure 403 {object} map[string]interface{} "Fridge is not owned by the caller"
// @Failure 404 {object} map[string]interface{} "Fridge not found"
// @Router /recipes [get]
func (rc *RecipeController) SearchRecipes(c *gin.Context) {
	filter, err := query.ParseRecipeFilter(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid search parameters",
			"error":   err.Error(),
		})
		return
	}

	var shelf []uint
	if filter.FridgeID != nil {
		fridge, err := rc.fridgeRepo.FindByID(*filter.FridgeID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Fridge not found",
				"error":   "No fridge exists with the provided ID",
			})
			return
		}

		actor := middleware.CurrentActor(c)
		if actor.Anonymous || fridge.UserID != actor.ID {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Access denied",
				"error":   "Only the fridge owner may search against its shelf",
			})
			return
		}

		shelf, err = rc.fridgeRepo.ShelfIngredientIDs(fridge.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load fridge shelf",
				"error":   err.Error(),
			})
			return
		}
	}

	cacheKey := "recipes:search:" + c.Request.URL.RawQuery
	if rc.cache != nil {
		if payload, ok := rc.cache.GetSearch(cacheKey); ok {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Recipes retrieved successfully",
				"data":    payload,
			})
			return
		}
	}

	recipes, err := rc.repo.Search(filter, shelf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search recipes",
			"error":   err.Error(),
		})
		return
	}

	var fields []string
	if filter.Compact {
		fields = serializers.CompactRecipeFields
	}
	payload, err := serializers.ProjectRecipes(recipes, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to serialize recipes",
			"error":   err.Error(),
		})
		return
	}

	if rc.cache != nil {
		if err := rc.cache.StoreSearch(cacheKey, payload, searchCacheTTL); err != nil {
			log.Printf("Failed to cache recipe search: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    payload,
	})
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Create a recipe authored by the caller
// @Tags recipe
// @Accept json
// @Produce json
// @Param recipe body models.Recipe true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	actor := middleware.CurrentActor(c)
	recipe.ID = 0
	recipe.AuthorID = actor.ID

	if err := rc.repo.Create(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// GetRecipeByID godoc
// @Summary Get a recipe
// @Description Recipes are an open catalog; any caller may read them
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	payload, err := serializers.ProjectRecipe(recipe, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to serialize recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    payload,
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Author or staff only
// @Tags recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body models.Recipe true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to modify this recipe"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.CanWrite(actor, existing.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to modify this recipe",
		})
		return
	}

	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe.ID = existing.ID
	recipe.AuthorID = existing.AuthorID
	recipe.CreatedAt = existing.CreatedAt

	if err := rc.repo.Update(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Author or staff only; the recipe's ingredient usages are removed with it
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to delete this recipe"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.CanWrite(actor, existing.AuthorID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to delete this recipe",
		})
		return
	}

	if err := rc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}
