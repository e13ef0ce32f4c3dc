package repository

import (
	"foodinfo/internal/models"

	"gorm.io/gorm"
)

type ConversionRepository interface {
	Create(conversion *models.UtensilConversion) error
	FindAll() ([]models.UtensilConversion, error)
	FindByID(id uint) (*models.UtensilConversion, error)
	FindByPair(utensilID, ingredientID uint) (*models.UtensilConversion, error)
	Update(conversion *models.UtensilConversion) error
	Delete(id uint) error
}

type conversionRepository struct {
	db *gorm.DB
}

func NewConversionRepository(db *gorm.DB) ConversionRepository {
	return &conversionRepository{db}
}

func (r *conversionRepository) Create(conversion *models.UtensilConversion) error {
	return r.db.Create(conversion).Error
}

func (r *conversionRepository) FindAll() ([]models.UtensilConversion, error) {
	var conversions []models.UtensilConversion
	err := r.db.Order("id").Find(&conversions).Error
	return conversions, err
}

func (r *conversionRepository) FindByID(id uint) (*models.UtensilConversion, error) {
	var conversion models.UtensilConversion
	err := r.db.First(&conversion, id).Error
	if err != nil {
		return nil, err
	}
	return &conversion, nil
}

// FindByPair looks a conversion up by its composite (utensil, ingredient)
// key.
func (r *conversionRepository) FindByPair(utensilID, ingredientID uint) (*models.UtensilConversion, error) {
	var conversion models.UtensilConversion
	err := r.db.Where("utensil_id = ? AND ingredient_id = ?", utensilID, ingredientID).
		First(&conversion).Error
	if err != nil {
		return nil, err
	}
	return &conversion, nil
}

func (r *conversionRepository) Update(conversion *models.UtensilConversion) error {
	return r.db.Save(conversion).Error
}

func (r *conversionRepository) Delete(id uint) error {
	return r.db.Delete(&models.UtensilConversion{}, id).Error
}
