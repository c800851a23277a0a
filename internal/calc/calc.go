// Package calc holds the pure nutrition and energy calculations. No state,
// no I/O; rounding is applied once, on the final value.
package calc

import (
	"math"
	"strings"

	"fittrack/internal/models"
)

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
}

var goalAdjustments = map[string]float64{
	models.GoalWeightLoss:  -500,
	models.GoalMuscleGain:  300,
	models.GoalMaintenance: 0,
	models.GoalEndurance:   200,
}

// metValues maps exercise types to their Metabolic Equivalent of Task.
// Unknown types fall back to defaultMET.
var metValues = map[string]float64{
	"running":       11.5,
	"cycling":       8.0,
	"swimming":      8.0,
	"weightlifting": 6.0,
	"walking":       3.5,
	"yoga":          3.0,
}

const defaultMET = 5.0

// BMR computes the Basal Metabolic Rate with the Mifflin-St Jeor equation.
// Gender "other" takes the female branch, matching the source behavior.
func BMR(user models.UserProfile) int {
	bmr := 10*user.Weight + 6.25*user.Height - 5*float64(user.Age)
	if user.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales BMR by the profile's activity level multiplier.
func TDEE(user models.UserProfile) int {
	multiplier, ok := activityMultipliers[user.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers["sedentary"]
	}
	return int(math.Round(float64(BMR(user)) * multiplier))
}

// CalorieGoal adjusts TDEE for the profile's goal: -500 for weight loss,
// +300 for muscle gain, +200 for endurance, 0 for maintenance.
func CalorieGoal(user models.UserProfile) int {
	return int(math.Round(float64(TDEE(user)) + goalAdjustments[user.Goal]))
}

// BMI returns weight(kg) / height(m)^2 rounded to one decimal for display.
func BMI(weight, height float64) float64 {
	heightInMeters := height / 100
	return math.Round(weight/(heightInMeters*heightInMeters)*10) / 10
}

// BMICategory classifies an unrounded BMI value. Boundaries are strict
// less-than: <18.5 Underweight, <25 Normal, <30 Overweight, else Obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// RawBMI returns the unrounded BMI, which categorization must use so that
// display rounding never moves a value across a boundary.
func RawBMI(weight, height float64) float64 {
	heightInMeters := height / 100
	return weight / (heightInMeters * heightInMeters)
}

// ProteinGoal returns the daily protein target in grams: 2.0 g/kg for
// muscle gain, 1.6 g/kg otherwise.
func ProteinGoal(user models.UserProfile) int {
	perKg := 1.6
	if user.Goal == models.GoalMuscleGain {
		perKg = 2.0
	}
	return int(math.Round(user.Weight * perKg))
}

// EstimateCaloriesBurned estimates exercise energy expenditure as
// MET x weight(kg) x duration(hours). Exercise type lookup is
// case-insensitive.
func EstimateCaloriesBurned(weight float64, durationMinutes int, exerciseType string) int {
	met, ok := metValues[strings.ToLower(exerciseType)]
	if !ok {
		met = defaultMET
	}
	return int(math.Round(met * weight * float64(durationMinutes) / 60))
}

// Metrics bundles the display-ready numbers for a profile.
func Metrics(user models.UserProfile) models.HealthMetrics {
	raw := RawBMI(user.Weight, user.Height)
	return models.HealthMetrics{
		BMR:         BMR(user),
		TDEE:        TDEE(user),
		CalorieGoal: CalorieGoal(user),
		BMI:         BMI(user.Weight, user.Height),
		BMICategory: BMICategory(raw),
		ProteinGoal: ProteinGoal(user),
	}
}
