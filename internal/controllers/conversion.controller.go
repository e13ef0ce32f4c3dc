package controllers

import (
	"net/http"
	"strconv"

	"foodinfo/internal/models"
	"foodinfo/internal/repository"

	"github.com/gin-gonic/gin"
)

type ConversionController struct {
	repo repository.ConversionRepository
}

func NewConversionController(repo repository.ConversionRepository) *ConversionController {
	return &ConversionController{repo: repo}
}

// ListConversions godoc
// @Summary List utensil conversions
// @Tags conversion
// @Produce json
// @Success 200 {object} map[string]interface{} "Conversions retrieved successfully"
// @Router /conversions [get]
func (cc *ConversionController) ListConversions(c *gin.Context) {
	conversions, err := cc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve conversions",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversions retrieved successfully",
		"data":    conversions,
	})
}

// CreateConversion godoc
// @Summary Create a utensil conversion
// @Description Staff only; the (utensil, ingredient) pair must be unique
// @Tags conversion
// @Accept json
// @Produce json
// @Param conversion body models.UtensilConversion true "Conversion data"
// @Success 201 {object} map[string]interface{} "Conversion created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid data or duplicate pair"
// @Failure 403 {object} map[string]interface{} "Only staff may modify conversions"
// @Router /conversions [post]
func (cc *ConversionController) CreateConversion(c *gin.Context) {
	if !requireStaff(c, "conversion") {
		return
	}

	var conversion models.UtensilConversion
	if err := c.ShouldBindJSON(&conversion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := cc.repo.Create(&conversion); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Conversion already exists",
				"error":   "Ingredient/Utensil combination must be unique",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create conversion",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Conversion created successfully",
		"data":    conversion,
	})
}

// GetConversionByPair godoc
// @Summary Get a conversion by its composite key
// @Description Look a conversion up by utensil id and ingredient id
// @Tags conversion
// @Produce json
// @Param utensil_id path int true "Utensil (measure) ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Conversion retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Conversion not found"
// @Router /conversions/{utensil_id}/{ingredient_id} [get]
func (cc *ConversionController) GetConversionByPair(c *gin.Context) {
	utensilID, err := strconv.ParseUint(c.Param("utensil_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid utensil ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}
	ingredientID, err := strconv.ParseUint(c.Param("ingredient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	conversion, err := cc.repo.FindByPair(uint(utensilID), uint(ingredientID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Conversion not found",
			"error":   "No conversion exists for the provided utensil/ingredient pair",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversion retrieved successfully",
		"data":    conversion,
	})
}

// UpdateConversion godoc
// @Summary Update a conversion
// @Description Staff only
// @Tags conversion
// @Accept json
// @Produce json
// @Param id path int true "Conversion ID"
// @Param conversion body models.UtensilConversion true "Conversion data"
// @Success 200 {object} map[string]interface{} "Conversion updated successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify conversions"
// @Failure 404 {object} map[string]interface{} "Conversion not found"
// @Router /conversions/{id} [put]
func (cc *ConversionController) UpdateConversion(c *gin.Context) {
	if !requireStaff(c, "conversion") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid conversion ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := cc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Conversion not found",
			"error":   "No conversion exists with the provided ID",
		})
		return
	}

	var conversion models.UtensilConversion
	if err := c.ShouldBindJSON(&conversion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	conversion.ID = existing.ID
	conversion.CreatedAt = existing.CreatedAt

	if err := cc.repo.Update(&conversion); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Conversion already exists",
				"error":   "Ingredient/Utensil combination must be unique",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update conversion",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversion updated successfully",
		"data":    conversion,
	})
}

// DeleteConversion godoc
// @Summary Delete a conversion
// @Description Staff only
// @Tags conversion
// @Produce json
// @Param id path int true "Conversion ID"
// @Success 200 {object} map[string]interface{} "Conversion deleted successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify conversions"
// @Failure 404 {object} map[string]interface{} "Conversion not found"
// @Router /conversions/{id} [delete]
func (cc *ConversionController) DeleteConversion(c *gin.Context) {
	if !requireStaff(c, "conversion") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid conversion ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := cc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Conversion not found",
			"error":   "No conversion exists with the provided ID",
		})
		return
	}

	if err := cc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete conversion",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Conversion deleted successfully",
		"data":    nil,
	})
}
