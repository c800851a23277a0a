package models

import "time"

// DailySummary is a computed view, never persisted.
type DailySummary struct {
	Date             time.Time `json:"date"`
	Steps            int       `json:"steps"`
	CaloriesConsumed float64   `json:"calories_consumed"`
	CaloriesBurned   float64   `json:"calories_burned"`
	CaloriesGoal     int       `json:"calories_goal"`
	WorkoutsCount    int       `json:"workouts_count"`
	ActiveMinutes    int       `json:"active_minutes"`
}

// ProgressPoint is one day of the trend series. Days without data carry
// zeros so the series is always exactly window days long.
type ProgressPoint struct {
	Date     time.Time `json:"date"`
	Steps    int       `json:"steps"`
	Workouts int       `json:"workouts"`
}

type ProgressReport struct {
	WindowDays         int             `json:"window_days"`
	Series             []ProgressPoint `json:"series"`
	TotalWorkouts      int             `json:"total_workouts"`
	TotalSteps         int             `json:"total_steps"`
	AverageStepsPerDay int             `json:"average_steps_per_day"`
	TotalActiveMinutes int             `json:"total_active_minutes"`
}

// HealthMetrics bundles the display-ready calculation outputs for a profile.
type HealthMetrics struct {
	BMR         int     `json:"bmr"`
	TDEE        int     `json:"tdee"`
	CalorieGoal int     `json:"calorie_goal"`
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	ProteinGoal int     `json:"protein_goal"`
}
