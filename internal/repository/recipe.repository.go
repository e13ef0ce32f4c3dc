package repository

import (
	"foodinfo/internal/models"
	"foodinfo/internal/query"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	Search(filter *query.RecipeFilter, shelf []uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Tags").Preload("Usages").First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Search applies a validated recipe filter. shelf carries the resolved
// fridge shelf ingredient ids when the filter names a fridge; the caller
// has already checked fridge ownership.
//
// In absence-limit mode a recipe qualifies when the number of its usage
// rows whose ingredient is outside the available set does not exceed the
// limit. Counts are taken over plain usage rows, so an ingredient used
// through several measures counts once per usage row.
func (r *recipeRepository) Search(filter *query.RecipeFilter, shelf []uint) ([]models.Recipe, error) {
	q := r.db.Model(&models.Recipe{}).Preload("Tags").Preload("Usages")

	if filter.Title != "" {
		q = q.Where("recipes.title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.CaloriesAbove != nil {
		q = q.Where("recipes.calories >= ?", *filter.CaloriesAbove)
	}
	if filter.CaloriesBelow != nil {
		q = q.Where("recipes.calories <= ?", *filter.CaloriesBelow)
	}
	if filter.AuthorID != nil {
		q = q.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagIDs) > 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Table("recipe_tags").Select("recipe_id").Where("tag_id IN ?", filter.TagIDs))
	}

	if filter.AbsentLimit != nil {
		available := filter.AvailableIDs(shelf)
		q = q.Joins("LEFT JOIN ingredient_usages ON ingredient_usages.recipe_id = recipes.id").
			Group("recipes.id").
			Having("COUNT(ingredient_usages.id) - COUNT(CASE WHEN ingredient_usages.ingredient_id IN ? THEN 1 END) <= ?",
				available, *filter.AbsentLimit)
	} else {
		if len(filter.IngredientIDs) > 0 {
			q = q.Where("recipes.id IN (?)",
				r.db.Table("ingredient_usages").Select("recipe_id").Where("ingredient_id IN ?", filter.IngredientIDs))
		}
		if filter.FridgeID != nil {
			q = q.Where("recipes.id IN (?)",
				r.db.Table("ingredient_usages").Select("recipe_id").Where("ingredient_id IN ?", shelf))
		}
	}

	var recipes []models.Recipe
	err := q.Order("recipes.title").Find(&recipes).Error
	return recipes, err
}

// Update saves the recipe and replaces its tag links and usage rows with
// the given ones. Save alone would only upsert associations, so usages
// and tags removed from the payload would linger.
func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Usages").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Replace(recipe.Tags); err != nil {
			return err
		}

		// Usage rows carry a non-nullable recipe id, so they are rebuilt
		// rather than detached.
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientUsage{}).Error; err != nil {
			return err
		}
		if len(recipe.Usages) == 0 {
			return nil
		}
		for i := range recipe.Usages {
			recipe.Usages[i].ID = 0
			recipe.Usages[i].RecipeID = recipe.ID
		}
		return tx.Create(&recipe.Usages).Error
	})
}

// Delete removes the recipe together with its usage rows and tag links.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Select("Usages", "Tags").Delete(&models.Recipe{ID: id}).Error
}
