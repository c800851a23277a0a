package calc

import (
	"testing"

	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func baseProfile() models.UserProfile {
	return models.UserProfile{
		Name:          "Alex",
		Age:           30,
		Gender:        models.GenderMale,
		Height:        180,
		Weight:        80,
		Goal:          models.GoalMaintenance,
		ActivityLevel: "moderately_active",
	}
}

func TestBMR(t *testing.T) {
	user := baseProfile()

	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, 1780, BMR(user))

	// female branch subtracts 161: 1775 - 161 = 1614
	user.Gender = models.GenderFemale
	assert.Equal(t, 1614, BMR(user))

	// "other" takes the female branch
	user.Gender = models.GenderOther
	assert.Equal(t, 1614, BMR(user))
}

func TestBMRRounding(t *testing.T) {
	// 10*72.5 + 6.25*165 - 5*28 - 161 = 1455.25 -> 1455
	user := models.UserProfile{Age: 28, Gender: models.GenderFemale, Height: 165, Weight: 72.5}
	assert.Equal(t, 1455, BMR(user))

	// a .5 fraction rounds away from zero: 10*80.3 + 6.25*170 - 5*25 + 5 = 1745.5 -> 1746
	user = models.UserProfile{Age: 25, Gender: models.GenderMale, Height: 170, Weight: 80.3}
	assert.Equal(t, 1746, BMR(user))
}

func TestTDEEAndCalorieGoal(t *testing.T) {
	user := baseProfile()

	// 1780 * 1.55 = 2759
	assert.Equal(t, 2759, TDEE(user))
	// maintenance adds nothing
	assert.Equal(t, 2759, CalorieGoal(user))

	user.Goal = models.GoalWeightLoss
	assert.Equal(t, 2259, CalorieGoal(user))

	user.Goal = models.GoalMuscleGain
	assert.Equal(t, 3059, CalorieGoal(user))

	user.Goal = models.GoalEndurance
	assert.Equal(t, 2959, CalorieGoal(user))
}

func TestTDEEMultipliers(t *testing.T) {
	tests := []struct {
		level    string
		expected int
	}{
		{"sedentary", 2136},         // 1780 * 1.2
		{"lightly_active", 2448},    // 1780 * 1.375 = 2447.5
		{"moderately_active", 2759}, // 1780 * 1.55
		{"very_active", 3071},       // 1780 * 1.725 = 3070.5
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			user := baseProfile()
			user.ActivityLevel = tt.level
			assert.Equal(t, tt.expected, TDEE(user))
		})
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestBMIRounding(t *testing.T) {
	// 80 / 1.8^2 = 24.69... -> 24.7 for display
	assert.Equal(t, 24.7, BMI(80, 180))

	// Categorization must use the raw value: 81 / 1.8^2 = 25.0
	assert.Equal(t, "Overweight", BMICategory(RawBMI(81, 180)))
}

func TestProteinGoal(t *testing.T) {
	user := baseProfile()
	assert.Equal(t, 128, ProteinGoal(user)) // 80 * 1.6

	user.Goal = models.GoalMuscleGain
	assert.Equal(t, 160, ProteinGoal(user)) // 80 * 2.0
}

func TestEstimateCaloriesBurned(t *testing.T) {
	// 11.5 * 80 * 0.5 = 460
	assert.Equal(t, 460, EstimateCaloriesBurned(80, 30, "running"))

	// lookup is case-insensitive
	assert.Equal(t, 460, EstimateCaloriesBurned(80, 30, "Running"))

	// unknown types use the default MET of 5.0: 5 * 80 * 0.5 = 200
	assert.Equal(t, 200, EstimateCaloriesBurned(80, 30, "parkour"))

	// yoga: 3.0 * 70 * 1 = 210
	assert.Equal(t, 210, EstimateCaloriesBurned(70, 60, "yoga"))
}

func TestMetrics(t *testing.T) {
	metrics := Metrics(baseProfile())

	assert.Equal(t, 1780, metrics.BMR)
	assert.Equal(t, 2759, metrics.TDEE)
	assert.Equal(t, 2759, metrics.CalorieGoal)
	assert.Equal(t, 24.7, metrics.BMI)
	assert.Equal(t, "Normal", metrics.BMICategory)
	assert.Equal(t, 128, metrics.ProteinGoal)
}
