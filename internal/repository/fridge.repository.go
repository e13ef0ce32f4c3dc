package repository

import (
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"

	"gorm.io/gorm"
)

type FridgeRepository interface {
	Create(fridge *models.Fridge) error
	FindByID(id uint) (*models.Fridge, error)
	FindVisible(actor permissions.Actor) ([]models.Fridge, error)
	Update(fridge *models.Fridge) error
	Delete(id uint) error
	SetShelf(fridge *models.Fridge, ingredientIDs []uint) error
	ShelfIngredientIDs(fridgeID uint) ([]uint, error)
}

type fridgeRepository struct {
	db *gorm.DB
}

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db}
}

func (r *fridgeRepository) Create(fridge *models.Fridge) error {
	return r.db.Create(fridge).Error
}

func (r *fridgeRepository) FindByID(id uint) (*models.Fridge, error) {
	var fridge models.Fridge
	err := r.db.Preload("Shelf").First(&fridge, id).Error
	if err != nil {
		return nil, err
	}
	return &fridge, nil
}

// FindVisible lists fridges for the actor: staff see all, everyone else
// only their own. There is no staff-authored fallback for fridges.
func (r *fridgeRepository) FindVisible(actor permissions.Actor) ([]models.Fridge, error) {
	q := r.db.Preload("Shelf").Order("name")
	if !actor.IsStaff {
		q = q.Where("user_id = ?", actor.ID)
	}

	var fridges []models.Fridge
	err := q.Find(&fridges).Error
	return fridges, err
}

func (r *fridgeRepository) Update(fridge *models.Fridge) error {
	return r.db.Save(fridge).Error
}

func (r *fridgeRepository) Delete(id uint) error {
	return r.db.Select("Shelf").Delete(&models.Fridge{ID: id}).Error
}

// SetShelf replaces the fridge's shelf with the given ingredients.
func (r *fridgeRepository) SetShelf(fridge *models.Fridge, ingredientIDs []uint) error {
	var ingredients []models.Ingredient
	if len(ingredientIDs) > 0 {
		if err := r.db.Find(&ingredients, ingredientIDs).Error; err != nil {
			return err
		}
	}
	return r.db.Model(fridge).Association("Shelf").Replace(ingredients)
}

// ShelfIngredientIDs returns the ids of the ingredients on a fridge's
// shelf without loading the full rows.
func (r *fridgeRepository) ShelfIngredientIDs(fridgeID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("fridge_shelf").Where("fridge_id = ?", fridgeID).
		Pluck("ingredient_id", &ids).Error
	return ids, err
}
