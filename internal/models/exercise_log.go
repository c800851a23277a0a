package models

import "time"

type ExerciseLog struct {
	ID           uint        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt    time.Time   `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID       uint        `json:"user_id" example:"1"`
	User         UserProfile `gorm:"foreignKey:UserID" json:"-" binding:"-" swaggerignore:"true"`
	ExerciseName string      `json:"exercise_name" example:"Running"`
	Sets         int         `json:"sets" example:"3"`
	Reps         int         `json:"reps" example:"10"`
	Weight       float64     `json:"weight" example:"60"`
	Duration     int         `json:"duration" example:"30"`
	Date         time.Time   `json:"date" example:"2024-01-01T10:00:00Z"`
	Source       string      `gorm:"default:manual" json:"source" example:"manual"`
}
