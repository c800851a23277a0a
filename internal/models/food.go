package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type FoodItem struct {
	ID              uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name            string  `gorm:"unique" json:"name" binding:"required" example:"Chicken Breast"`
	// Explicit column name: gorm's naming strategy would otherwise produce
	// calories_per100g, which the raw join in LogsForDay does not use.
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g" example:"165"`
	Protein         float64 `json:"protein" example:"31"`
	Carbs           float64 `json:"carbs" example:"0"`
	Fats            float64 `json:"fats" example:"3.6"`
}

type FoodLog struct {
	ID         uint        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time   `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UserID     uint        `json:"user_id" example:"1"`
	User       UserProfile `gorm:"foreignKey:UserID" json:"-" binding:"-" swaggerignore:"true"`
	FoodItemID uint        `json:"food_item_id" example:"1"`
	FoodItem   FoodItem    `gorm:"foreignKey:FoodItemID" json:"-" binding:"-" swaggerignore:"true"`
	Quantity   float64     `json:"quantity" example:"150"`
	MealType   string      `json:"meal_type" example:"lunch"`
	Date       time.Time   `json:"date" example:"2024-01-01T12:30:00Z"`
}

// FoodLogEntry is a FoodLog joined to its FoodItem, with nutrition values
// scaled by quantity/100. Values stay unrounded; display rounding is the
// caller's concern.
type FoodLogEntry struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	FoodItemID uint      `json:"food_item_id"`
	FoodName   string    `json:"food_name"`
	Quantity   float64   `json:"quantity"`
	MealType   string    `json:"meal_type"`
	Date       time.Time `json:"date"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fats       float64   `json:"fats"`
}
