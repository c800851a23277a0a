package database

import (
	"log"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
)

func MigrateDatabase() error {
	if DB == nil {
		return apperrors.ErrNotInitialized
	}

	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.UserProfile{},
		&models.ExerciseLog{},
		&models.ActivityLog{},
		&models.FoodItem{},
		&models.FoodLog{},
		&models.Streak{},
		&models.WorkoutPlan{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
