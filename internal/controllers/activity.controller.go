package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	repo repository.ActivityRepository
}

func NewActivityController(repo repository.ActivityRepository) *ActivityController {
	return &ActivityController{repo: repo}
}

// LogActivity godoc
// @Summary Log daily activity
// @Description Upsert the activity row for (user, day); a second write for the same day replaces it
// @Tags activity
// @Accept json
// @Produce json
// @Param activity body models.ActivityLog true "Activity data"
// @Success 200 {object} map[string]interface{} "Activity logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /activity [post]
func (ac *ActivityController) LogActivity(c *gin.Context) {
	var entry models.ActivityLog
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

	if err := ac.repo.Upsert(&entry); err != nil {
		respondError(c, "Failed to log activity", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity logged successfully",
		"data":    entry,
	})
}

// GetActivitiesByUserID godoc
// @Summary Get activity logs for a user
// @Description Newest first; start and end (RFC 3339 or YYYY-MM-DD) bound the range inclusively
// @Tags activity
// @Produce json
// @Param user_id path int true "User ID"
// @Param start query string false "Start date"
// @Param end query string false "End date"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /activity/user/{user_id} [get]
func (ac *ActivityController) GetActivitiesByUserID(c *gin.Context) {
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

	activities, err := ac.repo.FindByUserAndDateRange(uint(userID), startDate, endDate)
	if err != nil {
		respondError(c, "Failed to retrieve activities", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    activities,
	})
}
