package services

import (
	"path/filepath"
	"testing"

	"fittrack/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.UserProfile{},
		&models.ExerciseLog{},
		&models.ActivityLog{},
		&models.FoodItem{},
		&models.FoodLog{},
		&models.Streak{},
		&models.WorkoutPlan{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		Name:          "Alex",
		Age:           30,
		Gender:        models.GenderMale,
		Height:        180,
		Weight:        80,
		FitnessLevel:  "intermediate",
		Goal:          models.GoalMaintenance,
		ActivityLevel: "moderately_active",
	}
}
