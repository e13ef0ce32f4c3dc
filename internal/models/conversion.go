package models

import "time"

// UtensilConversion maps one utensil of an ingredient to its
// grams-equivalent. The (utensil, ingredient) pair is unique.
type UtensilConversion struct {
	ID            uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	StandardValue float64    `json:"standard_value" binding:"gte=0" example:"15"`
	UtensilID     uint       `gorm:"uniqueIndex:idx_utensil_ingredient" json:"utensil_id" binding:"required" example:"1"`
	Utensil       Measure    `gorm:"foreignKey:UtensilID;constraint:OnDelete:RESTRICT" json:"-"`
	IngredientID  uint       `gorm:"uniqueIndex:idx_utensil_ingredient" json:"ingredient_id" binding:"required" example:"1"`
	Ingredient    Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
}
