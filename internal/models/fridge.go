package models

import "time"

// Fridge is a named shelf of ingredients a user currently owns.
type Fridge struct {
	ID        uint         `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time    `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time    `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string       `gorm:"size:100;not null" json:"name" binding:"required" example:"kitchen fridge"`
	UserID    uint         `json:"user_id" example:"1"`
	User      User         `gorm:"foreignKey:UserID" json:"-"`
	Shelf     []Ingredient `gorm:"many2many:fridge_shelf" json:"shelf"`
}
