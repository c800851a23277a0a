package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutPlan struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `json:"user_id" example:"1"`
	User          UserProfile    `gorm:"foreignKey:UserID" json:"-" binding:"-" swaggerignore:"true"`
	Name          string         `json:"name" binding:"required" example:"5x5 Strength"`
	DurationWeeks int            `json:"duration_weeks" example:"12"`
}
