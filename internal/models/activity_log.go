package models

import "time"

// ActivityLog holds one row per user per calendar day. Date is stored at
// day granularity (UTC midnight); writes for an existing day replace the row.
type ActivityLog struct {
	ID             uint        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time   `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt      time.Time   `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID         uint        `gorm:"uniqueIndex:idx_activity_user_date" json:"user_id" example:"1"`
	User           UserProfile `gorm:"foreignKey:UserID" json:"-" binding:"-" swaggerignore:"true"`
	Steps          int         `json:"steps" example:"8000"`
	Distance       float64     `json:"distance" example:"5.6"`
	CaloriesBurned float64     `json:"calories_burned" example:"320"`
	ActiveMinutes  int         `json:"active_minutes" example:"45"`
	Date           time.Time   `gorm:"uniqueIndex:idx_activity_user_date" json:"date" example:"2024-01-01T00:00:00Z"`
	Source         string      `gorm:"default:manual" json:"source" example:"manual"`
}
