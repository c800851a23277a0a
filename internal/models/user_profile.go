package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	GoalWeightLoss  = "weight_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
	GoalEndurance   = "endurance"
)

type UserProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name          string         `json:"name" binding:"required" example:"Alex"`
	Age           int            `json:"age" binding:"required" example:"30"`
	Gender        string         `json:"gender" example:"male"`
	Height        float64        `json:"height" binding:"required" example:"180"`
	Weight        float64        `json:"weight" binding:"required" example:"80"`
	FitnessLevel  string         `json:"fitness_level" example:"intermediate"`
	Goal          string         `json:"goal" example:"maintenance"`
	ActivityLevel string         `json:"activity_level" example:"moderately_active"`
}
