package controllers

import (
	"net/http"
	"strconv"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	repo repository.WorkoutPlanRepository
}

func NewPlanController(repo repository.WorkoutPlanRepository) *PlanController {
	return &PlanController{repo: repo}
}

// CreatePlan godoc
// @Summary Create a workout plan
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body models.WorkoutPlan true "Plan data"
// @Success 201 {object} map[string]interface{} "Plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /plans [post]
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var plan models.WorkoutPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.repo.Create(&plan); err != nil {
		respondError(c, "Failed to create plan", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Plan created successfully",
		"data":    plan,
	})
}

// GetPlansByUserID godoc
// @Summary Get a user's workout plans
// @Tags plans
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Plans retrieved successfully"
// @Router /plans/user/{user_id} [get]
func (pc *PlanController) GetPlansByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plans, err := pc.repo.FindAllByUserID(uint(userID))
	if err != nil {
		respondError(c, "Failed to retrieve plans", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plans retrieved successfully",
		"data":    plans,
	})
}

// DeletePlan godoc
// @Summary Delete a workout plan
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} map[string]interface{} "Plan deleted successfully"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Router /plans/{id} [delete]
func (pc *PlanController) DeletePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := pc.repo.FindByID(uint(id)); err != nil {
		respondError(c, "Plan not found", err)
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		respondError(c, "Failed to delete plan", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plan deleted successfully",
		"data":    nil,
	})
}
