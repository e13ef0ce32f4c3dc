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

type MeasureController struct {
	repo repository.MeasureRepository
}

func NewMeasureController(repo repository.MeasureRepository) *MeasureController {
	return &MeasureController{repo: repo}
}

func requireStaff(c *gin.Context, kind string) bool {
	actor := middleware.CurrentActor(c)
	if !permissions.Policies[kind].Write(actor, 0) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "Only staff may modify this resource",
		})
		return false
	}
	return true
}

// ListMeasures godoc
// @Summary List measures
// @Tags measure
// @Produce json
// @Param name query string false "Substring filter on the measure name"
// @Success 200 {object} map[string]interface{} "Measures retrieved successfully"
// @Router /measures [get]
func (mc *MeasureController) ListMeasures(c *gin.Context) {
	measures, err := mc.repo.FindAll(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve measures",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measures retrieved successfully",
		"data":    measures,
	})
}

// CreateMeasure godoc
// @Summary Create a measure
// @Description Staff only
// @Tags measure
// @Accept json
// @Produce json
// @Param measure body models.Measure true "Measure data"
// @Success 201 {object} map[string]interface{} "Measure created successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify measures"
// @Router /measures [post]
func (mc *MeasureController) CreateMeasure(c *gin.Context) {
	if !requireStaff(c, "measure") {
		return
	}

	var measure models.Measure
	if err := c.ShouldBindJSON(&measure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := mc.repo.Create(&measure); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Measure created successfully",
		"data":    measure,
	})
}

// GetMeasureByID godoc
// @Summary Get a measure
// @Tags measure
// @Produce json
// @Param id path int true "Measure ID"
// @Success 200 {object} map[string]interface{} "Measure retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Router /measures/{id} [get]
func (mc *MeasureController) GetMeasureByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	measure, err := mc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measure not found",
			"error":   "No measure exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measure retrieved successfully",
		"data":    measure,
	})
}

// UpdateMeasure godoc
// @Summary Update a measure
// @Description Staff only
// @Tags measure
// @Accept json
// @Produce json
// @Param id path int true "Measure ID"
// @Param measure body models.Measure true "Measure data"
// @Success 200 {object} map[string]interface{} "Measure updated successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify measures"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Router /measures/{id} [put]
func (mc *MeasureController) UpdateMeasure(c *gin.Context) {
	if !requireStaff(c, "measure") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := mc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measure not found",
			"error":   "No measure exists with the provided ID",
		})
		return
	}

	var measure models.Measure
	if err := c.ShouldBindJSON(&measure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	measure.ID = existing.ID
	measure.CreatedAt = existing.CreatedAt

	if err := mc.repo.Update(&measure); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measure updated successfully",
		"data":    measure,
	})
}

// DeleteMeasure godoc
// @Summary Delete a measure
// @Description Staff only; deletion is blocked while conversions or recipes reference the measure
// @Tags measure
// @Produce json
// @Param id path int true "Measure ID"
// @Success 200 {object} map[string]interface{} "Measure deleted successfully"
// @Failure 400 {object} map[string]interface{} "Measure is still referenced"
// @Failure 403 {object} map[string]interface{} "Only staff may modify measures"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Router /measures/{id} [delete]
func (mc *MeasureController) DeleteMeasure(c *gin.Context) {
	if !requireStaff(c, "measure") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := mc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measure not found",
			"error":   "No measure exists with the provided ID",
		})
		return
	}

	if err := mc.repo.Delete(uint(id)); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Measure is still in use",
				"error":   "Remove conversions and recipes referencing this measure first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measure deleted successfully",
		"data":    nil,
	})
}
