package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/catalog"
	"fittrack/internal/models"
	"fittrack/internal/repository"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	repo   repository.ExerciseRepository
	logger *services.WorkoutLogger
}

func NewExerciseController(repo repository.ExerciseRepository, logger *services.WorkoutLogger) *ExerciseController {
	return &ExerciseController{repo: repo, logger: logger}
}

// LogExercise godoc
// @Summary Log a workout
// @Description Append an exercise log; the user's streak advances as a side effect
// @Tags exercise
// @Accept json
// @Produce json
// @Param exercise body models.ExerciseLog true "Exercise data"
// @Success 201 {object} map[string]interface{} "Exercise logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /exercise [post]
func (ec *ExerciseController) LogExercise(c *gin.Context) {
	var entry models.ExerciseLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	if err := ec.logger.LogExercise(&entry); err != nil {
		respondError(c, "Failed to log exercise", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise logged successfully",
		"data":    entry,
	})
}

// GetExercisesByUserID godoc
// @Summary Get exercise logs for a user
// @Description Newest first; start and end bound the range inclusively
// @Tags exercise
// @Produce json
// @Param user_id path int true "User ID"
// @Param start query string false "Start date"
// @Param end query string false "End date"
// @Success 200 {object} map[string]interface{} "Exercises retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /exercise/user/{user_id} [get]
func (ec *ExerciseController) GetExercisesByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date range",
			"error":   err.Error(),
		})
		return
	}

	exercises, err := ec.repo.FindByUserAndDateRange(uint(userID), startDate, endDate)
	if err != nil {
		respondError(c, "Failed to retrieve exercises", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercises retrieved successfully",
		"data":    exercises,
	})
}

// GetCatalog godoc
// @Summary List the built-in exercise catalog
// @Description Optionally filter by category, equipment or level
// @Tags exercise
// @Produce json
// @Param category query string false "Category filter"
// @Param equipment query string false "Equipment filter"
// @Param level query string false "Difficulty filter"
// @Success 200 {object} map[string]interface{} "Catalog retrieved successfully"
// @Router /exercise/catalog [get]
func (ec *ExerciseController) GetCatalog(c *gin.Context) {
	exercises := catalog.Exercises

	if category := c.Query("category"); category != "" {
		exercises = catalog.ByCategory(category)
	} else if equipment := c.Query("equipment"); equipment != "" {
		exercises = catalog.ByEquipment(equipment)
	} else if level := c.Query("level"); level != "" {
		exercises = catalog.ByLevel(level)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Catalog retrieved successfully",
		"data":    exercises,
	})
}
