package repository

import (
	"foodinfo/internal/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	FindAll() ([]models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint) error
	CreateCategory(category *models.TagCategory) error
	FindAllCategories() ([]models.TagCategory, error)
	FindCategoryByID(id uint) (*models.TagCategory, error)
	DeleteCategory(id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("label").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}

func (r *tagRepository) CreateCategory(category *models.TagCategory) error {
	return r.db.Create(category).Error
}

func (r *tagRepository) FindAllCategories() ([]models.TagCategory, error) {
	var categories []models.TagCategory
	err := r.db.Preload("Tags").Order("name").Find(&categories).Error
	return categories, err
}

func (r *tagRepository) FindCategoryByID(id uint) (*models.TagCategory, error) {
	var category models.TagCategory
	err := r.db.Preload("Tags").First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *tagRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.TagCategory{}, id).Error
}
