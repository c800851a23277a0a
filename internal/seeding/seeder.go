// Package seeding populates a fresh database: the built-in food catalog on
// every startup, and optional demo data for development stores.
package seeding

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/services"
)

// DefaultFoodCatalog is the built-in food reference table. Seeding is
// idempotent by name, so it runs on every startup.
var DefaultFoodCatalog = []models.FoodItem{
	{Name: "Chicken Breast", CaloriesPer100g: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	{Name: "Brown Rice", CaloriesPer100g: 111, Protein: 2.6, Carbs: 23, Fats: 0.9},
	{Name: "Salmon", CaloriesPer100g: 208, Protein: 20, Carbs: 0, Fats: 13},
	{Name: "Eggs", CaloriesPer100g: 155, Protein: 13, Carbs: 1.1, Fats: 11},
	{Name: "Banana", CaloriesPer100g: 89, Protein: 1.1, Carbs: 23, Fats: 0.3},
	{Name: "Oatmeal", CaloriesPer100g: 68, Protein: 2.4, Carbs: 12, Fats: 1.4},
	{Name: "Greek Yogurt", CaloriesPer100g: 59, Protein: 10, Carbs: 3.6, Fats: 0.4},
	{Name: "Broccoli", CaloriesPer100g: 34, Protein: 2.8, Carbs: 7, Fats: 0.4},
	{Name: "Sweet Potato", CaloriesPer100g: 86, Protein: 1.6, Carbs: 20, Fats: 0.1},
	{Name: "Almonds", CaloriesPer100g: 579, Protein: 21, Carbs: 22, Fats: 50},
	{Name: "Apple", CaloriesPer100g: 52, Protein: 0.3, Carbs: 14, Fats: 0.2},
	{Name: "Whole Wheat Bread", CaloriesPer100g: 247, Protein: 13, Carbs: 41, Fats: 4.2},
}

func SeedFoodCatalog(foods repository.FoodRepository) error {
	if err := foods.SeedCatalog(DefaultFoodCatalog); err != nil {
		return fmt.Errorf("failed to seed food catalog: %w", err)
	}
	log.Printf("Food catalog seeded (%d items)", len(DefaultFoodCatalog))
	return nil
}

// SeedDemoData creates a demo profile with two weeks of randomized logs.
// Intended for development databases only.
func SeedDemoData(
	users repository.UserRepository,
	activities repository.ActivityRepository,
	foods repository.FoodRepository,
	logger *services.WorkoutLogger,
) error {
	profile := &models.UserProfile{
		Name:          "Demo User",
		Age:           30,
		Gender:        models.GenderMale,
		Height:        180,
		Weight:        80,
		FitnessLevel:  "intermediate",
		Goal:          models.GoalMaintenance,
		ActivityLevel: "moderately_active",
	}
	if err := users.Create(profile); err != nil {
		return fmt.Errorf("failed to create demo profile: %w", err)
	}

	items, err := foods.AllItems()
	if err != nil {
		return err
	}

	exerciseNames := []string{"Running", "Cycling", "Weightlifting", "Yoga", "Walking"}
	now := time.Now()

	for daysAgo := 13; daysAgo >= 0; daysAgo-- {
		day := now.AddDate(0, 0, -daysAgo)

		entry := &models.ActivityLog{
			UserID:         profile.ID,
			Steps:          4000 + mathrand.Intn(8000),
			Distance:       2 + mathrand.Float64()*6,
			CaloriesBurned: float64(150 + mathrand.Intn(400)),
			ActiveMinutes:  20 + mathrand.Intn(70),
			Date:           day,
			Source:         "manual",
		}
		if err := activities.Upsert(entry); err != nil {
			return err
		}

		// Roughly two out of three days get a workout.
		if mathrand.Intn(3) > 0 {
			exercise := &models.ExerciseLog{
				UserID:       profile.ID,
				ExerciseName: exerciseNames[mathrand.Intn(len(exerciseNames))],
				Sets:         3,
				Reps:         10,
				Weight:       float64(20 + mathrand.Intn(60)),
				Duration:     20 + mathrand.Intn(40),
				Date:         day,
				Source:       "manual",
			}
			if err := logger.LogExercise(exercise); err != nil {
				return err
			}
		}

		if len(items) > 0 {
			for _, meal := range []string{models.MealBreakfast, models.MealLunch, models.MealDinner} {
				foodLog := &models.FoodLog{
					UserID:     profile.ID,
					FoodItemID: items[mathrand.Intn(len(items))].ID,
					Quantity:   float64(100 + mathrand.Intn(200)),
					MealType:   meal,
					Date:       day,
				}
				if err := foods.CreateLog(foodLog); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Demo data seeded for profile %d", profile.ID)
	return nil
}
