package controllers

import (
	"net/http"
	"strconv"

	"foodinfo/internal/middleware"
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"
	"foodinfo/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	repo repository.IngredientRepository
}

func NewIngredientController(repo repository.IngredientRepository) *IngredientController {
	return &IngredientController{repo: repo}
}

// ListIngredients godoc
// @Summary List visible ingredients
// @Description List ingredients readable by the caller: staff see all, others see their own plus staff-authored entries
// @Tags ingredient
// @Produce json
// @Param name query string false "Substring filter on the ingredient name"
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Router /ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	ingredients, err := ic.repo.FindVisible(actor, c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients retrieved successfully",
		"data":    ingredients,
	})
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Description Create an ingredient owned by the caller
// @Tags ingredient
// @Accept json
// @Produce json
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 201 {object} map[string]interface{} "Ingredient created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	actor := middleware.CurrentActor(c)
	ingredient.ID = 0
	ingredient.UserID = actor.ID
	if ingredient.Category == "" {
		ingredient.Category = models.CategoryOther
	}

	if err := ic.repo.Create(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Ingredient created successfully",
		"data":    ingredient,
	})
}

// GetIngredientByID godoc
// @Summary Get an ingredient
// @Description Retrieve one ingredient if the caller may read it
// @Tags ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to read this ingredient"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [get]
func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	ingredient, err := ic.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.CanRead(actor, ingredient.UserID, ingredient.User.IsStaff) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to read this ingredient",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient retrieved successfully",
		"data":    ingredient,
	})
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Update an ingredient owned by the caller (staff may update any)
// @Tags ingredient
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.Ingredient true "Ingredient data"
// @Success 200 {object} map[string]interface{} "Ingredient updated successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to modify this ingredient"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [put]
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := ic.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.CanWrite(actor, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to modify this ingredient",
		})
		return
	}

	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Ownership is immutable post-creation.
	ingredient.ID = existing.ID
	ingredient.UserID = existing.UserID
	ingredient.CreatedAt = existing.CreatedAt

	if err := ic.repo.Update(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient updated successfully",
		"data":    ingredient,
	})
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Delete an ingredient; deletion is blocked while conversions or recipes reference it
// @Tags ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient deleted successfully"
// @Failure 400 {object} map[string]interface{} "Ingredient is still referenced"
// @Failure 403 {object} map[string]interface{} "Not allowed to delete this ingredient"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /ingredients/{id} [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := ic.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Ingredient not found",
			"error":   "No ingredient exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.CanWrite(actor, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to delete this ingredient",
		})
		return
	}

	if err := ic.repo.Delete(uint(id)); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Ingredient is still in use",
				"error":   "Remove conversions and recipes referencing this ingredient first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete ingredient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient deleted successfully",
		"data":    nil,
	})
}
