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

type FridgeController struct {
	repo repository.FridgeRepository
}

func NewFridgeController(repo repository.FridgeRepository) *FridgeController {
	return &FridgeController{repo: repo}
}

// ListFridges godoc
// @Summary List the caller's fridges
// @Description Staff see every fridge, other users only their own
// @Tags fridge
// @Produce json
// @Success 200 {object} map[string]interface{} "Fridges retrieved successfully"
// @Router /fridge [get]
func (fc *FridgeController) ListFridges(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	fridges, err := fc.repo.FindVisible(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve fridges",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Fridges retrieved successfully",
		"data":    fridges,
	})
}

// CreateFridge godoc
// @Summary Create a fridge
// @Description Create a fridge owned by the caller
// @Tags fridge
// @Accept json
// @Produce json
// @Param fridge body models.Fridge true "Fridge data"
// @Success 201 {object} map[string]interface{} "Fridge created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /fridge [post]
func (fc *FridgeController) CreateFridge(c *gin.Context) {
	var fridge models.Fridge
	if err := c.ShouldBindJSON(&fridge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	actor := middleware.CurrentActor(c)
	fridge.ID = 0
	fridge.UserID = actor.ID

	if err := fc.repo.Create(&fridge); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create fridge",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Fridge created successfully",
		"data":    fridge,
	})
}

func (fc *FridgeController) fridgeForWrite(c *gin.Context) *models.Fridge {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid fridge ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil
	}

	fridge, err := fc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Fridge not found",
			"error":   "No fridge exists with the provided ID",
		})
		return nil
	}

	actor := middleware.CurrentActor(c)
	if !permissions.Policies["fridge"].Write(actor, fridge.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to modify this fridge",
		})
		return nil
	}

	return fridge
}

// GetFridgeByID godoc
// @Summary Get a fridge with its shelf
// @Description Owner or staff only
// @Tags fridge
// @Produce json
// @Param id path int true "Fridge ID"
// @Success 200 {object} map[string]interface{} "Fridge retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to read this fridge"
// @Failure 404 {object} map[string]interface{} "Fridge not found"
// @Router /fridge/{id} [get]
func (fc *FridgeController) GetFridgeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid fridge ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	fridge, err := fc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Fridge not found",
			"error":   "No fridge exists with the provided ID",
		})
		return
	}

	actor := middleware.CurrentActor(c)
	if !permissions.Policies["fridge"].Read(actor, fridge.UserID, false) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Access denied",
			"error":   "You are not allowed to read this fridge",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Fridge retrieved successfully",
		"data":    fridge,
	})
}

// UpdateFridge godoc
// @Summary Rename a fridge
// @Description Owner or staff only
// @Tags fridge
// @Accept json
// @Produce json
// @Param id path int true "Fridge ID"
// @Param fridge body models.Fridge true "Fridge data"
// @Success 200 {object} map[string]interface{} "Fridge updated successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to modify this fridge"
// @Failure 404 {object} map[string]interface{} "Fridge not found"
// @Router /fridge/{id} [put]
func (fc *FridgeController) UpdateFridge(c *gin.Context) {
	fridge := fc.fridgeForWrite(c)
	if fridge == nil {
		return
	}

	var update models.Fridge
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	fridge.Name = update.Name
	if err := fc.repo.Update(fridge); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update fridge",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Fridge updated successfully",
		"data":    fridge,
	})
}

type shelfRequest struct {
	IngredientIDs []uint `json:"ingredient_ids"`
}

// SetShelf godoc
// @Summary Replace a fridge's shelf
// @Description Owner or staff only; replaces the full set of shelf ingredients
// @Tags fridge
// @Accept json
// @Produce json
// @Param id path int true "Fridge ID"
// @Param shelf body shelfRequest true "Ingredient ids to place on the shelf"
// @Success 200 {object} map[string]interface{} "Shelf updated successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to modify this fridge"
// @Failure 404 {object} map[string]interface{} "Fridge not found"
// @Router /fridge/{id}/shelf [put]
func (fc *FridgeController) SetShelf(c *gin.Context) {
	fridge := fc.fridgeForWrite(c)
	if fridge == nil {
		return
	}

	var req shelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := fc.repo.SetShelf(fridge, req.IngredientIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update shelf",
			"error":   err.Error(),
		})
		return
	}

	updated, err := fc.repo.FindByID(fridge.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reload fridge",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Shelf updated successfully",
		"data":    updated,
	})
}

// DeleteFridge godoc
// @Summary Delete a fridge
// @Description Owner or staff only
// @Tags fridge
// @Produce json
// @Param id path int true "Fridge ID"
// @Success 200 {object} map[string]interface{} "Fridge deleted successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed to delete this fridge"
// @Failure 404 {object} map[string]interface{} "Fridge not found"
// @Router /fridge/{id} [delete]
func (fc *FridgeController) DeleteFridge(c *gin.Context) {
	fridge := fc.fridgeForWrite(c)
	if fridge == nil {
		return
	}

	if err := fc.repo.Delete(fridge.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete fridge",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Fridge deleted successfully",
		"data":    nil,
	})
}
