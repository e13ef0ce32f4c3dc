package repository

import (
	"foodinfo/internal/models"

	"gorm.io/gorm"
)

type MeasureRepository interface {
	Create(measure *models.Measure) error
	FindAll(name string) ([]models.Measure, error)
	FindByID(id uint) (*models.Measure, error)
	Update(measure *models.Measure) error
	Delete(id uint) error
}

type measureRepository struct {
	db *gorm.DB
}

func NewMeasureRepository(db *gorm.DB) MeasureRepository {
	return &measureRepository{db}
}

func (r *measureRepository) Create(measure *models.Measure) error {
	return r.db.Create(measure).Error
}

func (r *measureRepository) FindAll(name string) ([]models.Measure, error) {
	q := r.db.Order("name")
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	var measures []models.Measure
	err := q.Find(&measures).Error
	return measures, err
}

func (r *measureRepository) FindByID(id uint) (*models.Measure, error) {
	var measure models.Measure
	err := r.db.First(&measure, id).Error
	if err != nil {
		return nil, err
	}
	return &measure, nil
}

func (r *measureRepository) Update(measure *models.Measure) error {
	return r.db.Save(measure).Error
}

func (r *measureRepository) Delete(id uint) error {
	return r.db.Delete(&models.Measure{}, id).Error
}
