package database

import (
	"foodinfo/internal/models"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Measure{},
		&models.UtensilConversion{},
		&models.Fridge{},
		&models.TagCategory{},
		&models.Tag{},
		&models.Recipe{},
		&models.IngredientUsage{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
