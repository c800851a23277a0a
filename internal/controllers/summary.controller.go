package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	summary  *services.SummaryService
	progress *services.ProgressService
}

func NewSummaryController(summary *services.SummaryService, progress *services.ProgressService) *SummaryController {
	return &SummaryController{summary: summary, progress: progress}
}

// GetDailySummary godoc
// @Summary Get the daily rollup for a user
// @Description Steps, calories in/out, workouts, active minutes and the live calorie goal
// @Tags summary
// @Produce json
// @Param user_id path int true "User ID"
// @Param date query string false "Day to summarize, defaults to today"
// @Success 200 {object} map[string]interface{} "Summary computed successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /summary/{user_id} [get]
func (sc *SummaryController) GetDailySummary(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   err.Error(),
			})
			return
		}
	}

	summary, err := sc.summary.DailySummary(uint(userID), date)
	if err != nil {
		respondError(c, "Failed to compute summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary computed successfully",
		"data":    summary,
	})
}

// GetProgress godoc
// @Summary Get the trend series for a user
// @Description Exactly 7 (week) or 30 (month) points ending today, zero-filled
// @Tags summary
// @Produce json
// @Param user_id path int true "User ID"
// @Param window query string false "week or month, defaults to week"
// @Success 200 {object} map[string]interface{} "Progress computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid window"
// @Router /progress/{user_id} [get]
func (sc *SummaryController) GetProgress(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	windowDays := services.WindowWeek
	switch c.DefaultQuery("window", "week") {
	case "week":
		windowDays = services.WindowWeek
	case "month":
		windowDays = services.WindowMonth
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid window",
			"error":   "window must be week or month",
		})
		return
	}

	report, err := sc.progress.TimeSeries(uint(userID), windowDays)
	if err != nil {
		respondError(c, "Failed to compute progress", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress computed successfully",
		"data":    report,
	})
}
