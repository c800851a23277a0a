package main

import (
	"flag"
	"log"

	"fittrack/database"
	"fittrack/internal/repository"
	"fittrack/internal/seeding"
	"fittrack/internal/services"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// Try loading from the project root in case we run from cmd/seed/.
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	demo := flag.Bool("demo", false, "Also create a demo profile with two weeks of logs")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	exerciseRepo := repository.NewExerciseRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	streakRepo := repository.NewStreakRepository(database.DB)

	if err := seeding.SeedFoodCatalog(foodRepo); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if *demo {
		tracker := services.NewStreakTracker(streakRepo)
		logger := services.NewWorkoutLogger(exerciseRepo, tracker)
		if err := seeding.SeedDemoData(userRepo, activityRepo, foodRepo, logger); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	}

	log.Println("Seeding completed")
}
