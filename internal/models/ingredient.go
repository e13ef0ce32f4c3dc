package models

import "time"

// Ingredient categories accepted by the API.
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryMeat      = "meat"
	CategoryFish      = "fish"
	CategoryDairy     = "dairy"
	CategoryGrain     = "grain"
	CategorySpice     = "spice"
	CategoryOther     = "other"
)

type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required" example:"carrot"`
	Category  string    `gorm:"size:25;default:other" json:"category" binding:"omitempty,oneof=vegetable fruit meat fish dairy grain spice other" example:"vegetable"`
	Calories  *float64  `json:"calories" binding:"omitempty,gte=0" example:"41"`
	Proteins  *float64  `json:"proteins" binding:"omitempty,gte=0" example:"0.9"`
	Fats      *float64  `json:"fats" binding:"omitempty,gte=0" example:"0.2"`
	Carbs     *float64  `json:"carbs" binding:"omitempty,gte=0" example:"9.6"`
	UserID    uint      `json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
