package controllers

import (
	"net/http"
	"strconv"

	"foodinfo/internal/models"
	"foodinfo/internal/repository"
	"foodinfo/internal/serializers"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	repo repository.TagRepository
}

func NewTagController(repo repository.TagRepository) *TagController {
	return &TagController{repo: repo}
}

// ListTags godoc
// @Summary List tags
// @Tags tag
// @Produce json
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Router /tags [get]
func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tags",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tags retrieved successfully",
		"data":    tags,
	})
}

// CreateTag godoc
// @Summary Create a tag
// @Description Staff only; labels are unique
// @Tags tag
// @Accept json
// @Produce json
// @Param tag body models.Tag true "Tag data"
// @Success 201 {object} map[string]interface{} "Tag created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid data or duplicate label"
// @Failure 403 {object} map[string]interface{} "Only staff may modify tags"
// @Router /tags [post]
func (tc *TagController) CreateTag(c *gin.Context) {
	if !requireStaff(c, "tag") {
		return
	}

	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.repo.Create(&tag); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Tag already exists",
				"error":   "Tag labels must be unique",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tag created successfully",
		"data":    tag,
	})
}

// GetTagByID godoc
// @Summary Get a tag
// @Tags tag
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [get]
func (tc *TagController) GetTagByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid tag ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	tag, err := tc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag retrieved successfully",
		"data":    tag,
	})
}

// UpdateTag godoc
// @Summary Update a tag
// @Description Staff only
// @Tags tag
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body models.Tag true "Tag data"
// @Success 200 {object} map[string]interface{} "Tag updated successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify tags"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [put]
func (tc *TagController) UpdateTag(c *gin.Context) {
	if !requireStaff(c, "tag") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid tag ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := tc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	tag.ID = existing.ID
	tag.CreatedAt = existing.CreatedAt

	if err := tc.repo.Update(&tag); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Tag already exists",
				"error":   "Tag labels must be unique",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag updated successfully",
		"data":    tag,
	})
}

// DeleteTag godoc
// @Summary Delete a tag
// @Description Staff only
// @Tags tag
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag deleted successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify tags"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /tags/{id} [delete]
func (tc *TagController) DeleteTag(c *gin.Context) {
	if !requireStaff(c, "tag") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid tag ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := tc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag not found",
			"error":   "No tag exists with the provided ID",
		})
		return
	}

	if err := tc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete tag",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag deleted successfully",
		"data":    nil,
	})
}

type tagCategoryView struct {
	ID   uint                  `json:"id"`
	Name string                `json:"name"`
	Tags []serializers.TagView `json:"tags"`
}

// ListTagCategories godoc
// @Summary List tag categories with their tags
// @Tags tag
// @Produce json
// @Success 200 {object} map[string]interface{} "Tag categories retrieved successfully"
// @Router /tag-categories [get]
func (tc *TagController) ListTagCategories(c *gin.Context) {
	categories, err := tc.repo.FindAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tag categories",
			"error":   err.Error(),
		})
		return
	}

	views := make([]tagCategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, tagCategoryView{
			ID:   category.ID,
			Name: category.Name,
			Tags: serializers.ProjectTags(category.Tags),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag categories retrieved successfully",
		"data":    views,
	})
}

// CreateTagCategory godoc
// @Summary Create a tag category
// @Description Staff only; names are unique
// @Tags tag
// @Accept json
// @Produce json
// @Param category body models.TagCategory true "Tag category data"
// @Success 201 {object} map[string]interface{} "Tag category created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid data or duplicate name"
// @Failure 403 {object} map[string]interface{} "Only staff may modify tag categories"
// @Router /tag-categories [post]
func (tc *TagController) CreateTagCategory(c *gin.Context) {
	if !requireStaff(c, "tag") {
		return
	}

	var category models.TagCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.repo.CreateCategory(&category); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Tag category already exists",
				"error":   "Tag category names must be unique",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create tag category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tag category created successfully",
		"data":    category,
	})
}

// DeleteTagCategory godoc
// @Summary Delete a tag category and its tags
// @Description Staff only
// @Tags tag
// @Produce json
// @Param id path int true "Tag category ID"
// @Success 200 {object} map[string]interface{} "Tag category deleted successfully"
// @Failure 403 {object} map[string]interface{} "Only staff may modify tag categories"
// @Failure 404 {object} map[string]interface{} "Tag category not found"
// @Router /tag-categories/{id} [delete]
func (tc *TagController) DeleteTagCategory(c *gin.Context) {
	if !requireStaff(c, "tag") {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid tag category ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := tc.repo.FindCategoryByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Tag category not found",
			"error":   "No tag category exists with the provided ID",
		})
		return
	}

	if err := tc.repo.DeleteCategory(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete tag category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tag category deleted successfully",
		"data":    nil,
	})
}
