package models

import "time"

// Streak is the per-user workout streak state. Exactly one row per user,
// created together with the profile. Only the streak tracker writes to it.
type Streak struct {
	ID              uint        `gorm:"primaryKey" json:"id" example:"1"`
	UserID          uint        `gorm:"unique" json:"user_id" example:"1"`
	User            UserProfile `gorm:"foreignKey:UserID" json:"-" binding:"-" swaggerignore:"true"`
	CurrentStreak   int         `json:"current_streak" example:"3"`
	LongestStreak   int         `json:"longest_streak" example:"7"`
	LastWorkoutDate *time.Time  `json:"last_workout_date" example:"2024-01-03T00:00:00Z"`
}
