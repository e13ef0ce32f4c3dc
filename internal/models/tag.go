package models

import "time"

type TagCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Name      string    `gorm:"size:25;unique;not null" json:"name" binding:"required" example:"cuisine"`
	Tags      []Tag     `gorm:"foreignKey:CategoryID" json:"tags"`
}

type Tag struct {
	ID         uint        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time   `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time   `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Label      string      `gorm:"size:25;unique;not null" json:"label" binding:"required" example:"italian"`
	CategoryID uint        `json:"category_id" example:"1"`
	Category   TagCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}
