package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"fittrack/database"
	"fittrack/docs"
	"fittrack/internal/controllers"
	"fittrack/internal/repository"
	"fittrack/internal/seeding"
	"fittrack/internal/services"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables; a missing .env just means defaults.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment defaults")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitTrack API"
	docs.SwaggerInfo.Description = "Local data-access API of the FitTrack fitness tracker"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	exerciseRepo := repository.NewExerciseRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	streakRepo := repository.NewStreakRepository(database.DB)
	planRepo := repository.NewWorkoutPlanRepository(database.DB)

	// The food catalog seed is idempotent and runs on every startup.
	if err := seeding.SeedFoodCatalog(foodRepo); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}

	// Initialize services
	streakTracker := services.NewStreakTracker(streakRepo)
	workoutLogger := services.NewWorkoutLogger(exerciseRepo, streakTracker)
	summaryService := services.NewSummaryService(userRepo, activityRepo, exerciseRepo, foodRepo)
	progressService := services.NewProgressService(activityRepo, exerciseRepo)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, streakRepo)
	activityController := controllers.NewActivityController(activityRepo)
	exerciseController := controllers.NewExerciseController(exerciseRepo, workoutLogger)
	foodController := controllers.NewFoodController(foodRepo)
	summaryController := controllers.NewSummaryController(summaryService, progressService)
	planController := controllers.NewPlanController(planRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterExerciseRoutes(router, exerciseController)
	routes.RegisterFoodRoutes(router, foodController)
	routes.RegisterSummaryRoutes(router, summaryController)
	routes.RegisterPlanRoutes(router, planController)
	routes.RegisterMeRoutes(router, userRepo, userController, summaryController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
