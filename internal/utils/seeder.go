package utils

import (
	"fmt"
	"log"

	"foodinfo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sample data mirroring the shape the API tests expect: one staff
// account with a large shared catalog, two regular users with small
// private shelves.
const (
	seedStaffIngredients = 21
	seedUserIngredients  = 5
	seedPassword         = "TestPassword123!"
)

func seedUser(db *gorm.DB, username string, isStaff bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, Password: string(hash), IsStaff: isStaff}
	if err := db.Where(models.User{Username: username}).
		Attrs(models.User{Password: user.Password, IsStaff: isStaff}).
		FirstOrCreate(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedIngredients(db *gorm.DB, owner *models.User, count int) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, count)
	for i := 0; i < count; i++ {
		calories := float64(10 * (i + 1))
		ingredient := models.Ingredient{
			Name:     fmt.Sprintf("%s ingredient %d", owner.Username, i+1),
			Category: models.CategoryOther,
			Calories: &calories,
			UserID:   owner.ID,
		}
		if err := db.Where(models.Ingredient{Name: ingredient.Name, UserID: owner.ID}).
			FirstOrCreate(&ingredient).Error; err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// SeedSampleData loads a deterministic sample data set: users, their
// ingredient catalogs, per-user fridges, measures with conversions, and
// three recipes built from the staff catalog.
func SeedSampleData(db *gorm.DB) error {
	staff, err := seedUser(db, "staff", true)
	if err != nil {
		return err
	}
	user1, err := seedUser(db, "user1", false)
	if err != nil {
		return err
	}
	user2, err := seedUser(db, "user2", false)
	if err != nil {
		return err
	}

	staffIngrs, err := seedIngredients(db, staff, seedStaffIngredients)
	if err != nil {
		return err
	}
	user1Ingrs, err := seedIngredients(db, user1, seedUserIngredients)
	if err != nil {
		return err
	}
	user2Ingrs, err := seedIngredients(db, user2, seedUserIngredients)
	if err != nil {
		return err
	}

	for _, entry := range []struct {
		owner *models.User
		shelf []models.Ingredient
	}{
		{staff, staffIngrs},
		{user1, user1Ingrs},
		{user2, user2Ingrs},
	} {
		fridge := models.Fridge{Name: entry.owner.Username + " fridge", UserID: entry.owner.ID}
		if err := db.Where(models.Fridge{Name: fridge.Name, UserID: entry.owner.ID}).
			FirstOrCreate(&fridge).Error; err != nil {
			return err
		}
		if err := db.Model(&fridge).Association("Shelf").Replace(entry.shelf); err != nil {
			return err
		}
	}

	measureNames := []string{"teaspoon", "tablespoon", "cup"}
	measures := make([]models.Measure, 0, len(measureNames))
	for _, name := range measureNames {
		measure := models.Measure{Name: name}
		if err := db.Where(models.Measure{Name: name}).FirstOrCreate(&measure).Error; err != nil {
			return err
		}
		measures = append(measures, measure)
	}

	for i, measure := range measures {
		conversion := models.UtensilConversion{
			StandardValue: float64(5 * (i + 1)),
			UtensilID:     measure.ID,
			IngredientID:  staffIngrs[i].ID,
		}
		if err := db.Where(models.UtensilConversion{UtensilID: measure.ID, IngredientID: staffIngrs[i].ID}).
			FirstOrCreate(&conversion).Error; err != nil {
			return err
		}
	}

	for i := 0; i < 3; i++ {
		calories := float64(100 * (i + 1))
		recipe := models.Recipe{
			Title:     fmt.Sprintf("sample recipe %d", i+1),
			Portions:  2,
			TotalTime: 30,
			AuthorID:  staff.ID,
			Calories:  &calories,
		}
		if err := db.Where(models.Recipe{Title: recipe.Title}).FirstOrCreate(&recipe).Error; err != nil {
			return err
		}

		var count int64
		if err := db.Model(&models.IngredientUsage{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		for _, ingredient := range staffIngrs[i*5 : i*5+5] {
			usage := models.IngredientUsage{
				Amount:       1,
				IngredientID: ingredient.ID,
				MeasureID:    measures[i].ID,
				RecipeID:     recipe.ID,
			}
			if err := db.Create(&usage).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Sample data import complete")
	return nil
}

// SeedTags loads three tag categories with five tags each.
func SeedTags(db *gorm.DB) error {
	categoryNames := []string{"cuisine", "diet", "occasion"}
	for _, name := range categoryNames {
		category := models.TagCategory{Name: name}
		if err := db.Where(models.TagCategory{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		for i := 1; i <= 5; i++ {
			tag := models.Tag{
				Label:      fmt.Sprintf("%s tag %d", name, i),
				CategoryID: category.ID,
			}
			if err := db.Where(models.Tag{Label: tag.Label}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Tag import complete")
	return nil
}

// CleanupSampleData removes every seeded row, sample users included.
func CleanupSampleData(db *gorm.DB) error {
	usernames := []string{"staff", "user1", "user2"}

	var users []models.User
	if err := db.Where("username IN ?", usernames).Find(&users).Error; err != nil {
		return err
	}
	userIDs := make([]uint, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		return nil
	}

	if err := db.Where("recipe_id IN (?)",
		db.Model(&models.Recipe{}).Select("id").Where("author_id IN ?", userIDs),
	).Delete(&models.IngredientUsage{}).Error; err != nil {
		return err
	}
	if err := db.Where("author_id IN ?", userIDs).Delete(&models.Recipe{}).Error; err != nil {
		return err
	}
	if err := db.Where("ingredient_id IN (?)",
		db.Model(&models.Ingredient{}).Select("id").Where("user_id IN ?", userIDs),
	).Delete(&models.UtensilConversion{}).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM fridge_shelf WHERE fridge_id IN (SELECT id FROM fridges WHERE user_id IN ?)", userIDs).Error; err != nil {
		return err
	}
	if err := db.Where("user_id IN ?", userIDs).Delete(&models.Fridge{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id IN ?", userIDs).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	if err := db.Where("id IN ?", userIDs).Delete(&models.User{}).Error; err != nil {
		return err
	}

	log.Println("Sample data cleanup complete")
	return nil
}
