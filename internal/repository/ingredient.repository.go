package repository

import (
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	FindByID(id uint) (*models.Ingredient, error)
	FindVisible(actor permissions.Actor, name string) ([]models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Preload("User").First(&ingredient, id).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindVisible lists ingredients readable by the actor: staff see all,
// everyone else sees their own plus staff-authored entries.
func (r *ingredientRepository) FindVisible(actor permissions.Actor, name string) ([]models.Ingredient, error) {
	q := r.db.Model(&models.Ingredient{}).Order("ingredients.name")

	if name != "" {
		q = q.Where("ingredients.name LIKE ?", "%"+name+"%")
	}
	if !actor.IsStaff {
		q = q.Joins("JOIN users ON users.id = ingredients.user_id").
			Where("ingredients.user_id = ? OR users.is_staff = ?", actor.ID, true)
	}

	var ingredients []models.Ingredient
	err := q.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}
