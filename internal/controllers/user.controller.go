package controllers

import (
	"net/http"
	"strconv"

	"fittrack/internal/calc"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo    repository.UserRepository
	streaks repository.StreakRepository
}

func NewUserController(repo repository.UserRepository, streaks repository.StreakRepository) *UserController {
	return &UserController{repo: repo, streaks: streaks}
}

// CreateUser godoc
// @Summary Create a user profile
// @Description Create a profile; its streak row is created atomically with it
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.repo.Create(&profile); err != nil {
		respondError(c, "Failed to create profile", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Profile created successfully",
		"data":    profile,
	})
}

// GetCurrentUser godoc
// @Summary Get the active profile
// @Description Resolve the active profile (most recently created)
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No profile exists"
// @Router /users/current [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	profile, err := uc.repo.FindCurrent()
	if err != nil {
		respondError(c, "No profile exists", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// GetUserByID godoc
// @Summary Get a profile by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /users/{id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	profile, err := uc.repo.FindByID(uint(id))
	if err != nil {
		respondError(c, "Profile not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateUser godoc
// @Summary Update a profile
// @Description Replace profile fields; derived metrics reflect the edit immediately
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	profile.ID = uint(id)

	if _, err := uc.repo.FindByID(uint(id)); err != nil {
		respondError(c, "Profile not found", err)
		return
	}

	if err := uc.repo.Update(&profile); err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// PatchUser godoc
// @Summary Patch a profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param data body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /users/{id} [patch]
func (uc *UserController) PatchUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.repo.Patch(uint(id), data); err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
	})
}

// GetStreak godoc
// @Summary Get a user's workout streak
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Streak retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Streak not found"
// @Router /users/{id}/streak [get]
func (uc *UserController) GetStreak(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	streak, err := uc.streaks.FindByUserID(uint(id))
	if err != nil {
		respondError(c, "Streak not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Streak retrieved successfully",
		"data":    streak,
	})
}

// GetMetrics godoc
// @Summary Get derived health metrics for a user
// @Description BMR, TDEE, calorie goal, BMI with category, and protein goal
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Metrics computed successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /users/{id}/metrics [get]
func (uc *UserController) GetMetrics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	profile, err := uc.repo.FindByID(uint(id))
	if err != nil {
		respondError(c, "Profile not found", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Metrics computed successfully",
		"data":    calc.Metrics(*profile),
	})
}
