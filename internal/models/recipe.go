package models

import "time"

type Recipe struct {
	ID           uint              `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time         `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt    time.Time         `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title        string            `gorm:"size:200;not null" json:"title" binding:"required" example:"carrot soup"`
	Thumbnail    string            `gorm:"size:255" json:"thumbnail" example:"https://example.com/soup.jpg"`
	Portions     int               `json:"portions" binding:"omitempty,gte=0" example:"4"`
	TotalTime    int               `json:"total_time" binding:"omitempty,gte=0" example:"45"`
	Instructions string            `json:"instructions" example:"Chop, boil, blend."`
	AuthorID     uint              `json:"author_id" example:"1"`
	Author       User              `gorm:"foreignKey:AuthorID" json:"-"`
	Calories     *float64          `json:"calories" binding:"omitempty,gte=0" example:"320"`
	Proteins     *float64          `json:"proteins" binding:"omitempty,gte=0" example:"8"`
	Fats         *float64          `json:"fats" binding:"omitempty,gte=0" example:"12"`
	Carbs        *float64          `json:"carbs" binding:"omitempty,gte=0" example:"40"`
	Tags         []Tag             `gorm:"many2many:recipe_tags" json:"tags"`
	Usages       []IngredientUsage `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// IngredientUsage ties an ingredient and a measure to a recipe.
// Rows are removed together with their recipe.
type IngredientUsage struct {
	ID           uint       `gorm:"primaryKey" json:"id" example:"1"`
	Amount       float64    `json:"amount" example:"2"`
	IngredientID uint       `json:"ingredient_id" example:"1"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
	MeasureID    uint       `json:"measure_id" example:"1"`
	Measure      Measure    `gorm:"foreignKey:MeasureID;constraint:OnDelete:RESTRICT" json:"-"`
	RecipeID     uint       `json:"recipe_id" example:"1"`
}
