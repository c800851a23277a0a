package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	repo repository.FoodRepository
}

func NewFoodController(repo repository.FoodRepository) *FoodController {
	return &FoodController{repo: repo}
}

// LogFood godoc
// @Summary Log a food intake
// @Description Append a food log referencing an existing food item
// @Tags food
// @Accept json
// @Produce json
// @Param food body models.FoodLog true "Food log data"
// @Success 201 {object} map[string]interface{} "Food logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food item not found"
// @Router /food/log [post]
func (fc *FoodController) LogFood(c *gin.Context) {
	var entry models.FoodLog
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

	if err := fc.repo.CreateLog(&entry); err != nil {
		respondError(c, "Failed to log food", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data":    entry,
	})
}

// GetFoodLogsForDay godoc
// @Summary Get a day's food logs with computed nutrition
// @Description Each entry carries calories and macros scaled from the food item's per-100g values
// @Tags food
// @Produce json
// @Param user_id path int true "User ID"
// @Param date query string false "Day to fetch, defaults to today"
// @Success 200 {object} map[string]interface{} "Food logs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Router /food/log/user/{user_id} [get]
func (fc *FoodController) GetFoodLogsForDay(c *gin.Context) {
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

	entries, err := fc.repo.LogsForDay(uint(userID), date)
	if err != nil {
		respondError(c, "Failed to retrieve food logs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food logs retrieved successfully",
		"data":    entries,
	})
}

// SearchFoodItems godoc
// @Summary Search food items by name
// @Description Case-insensitive substring match, capped at 20 results
// @Tags food
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} map[string]interface{} "Food items retrieved successfully"
// @Router /food/items [get]
func (fc *FoodController) SearchFoodItems(c *gin.Context) {
	items, err := fc.repo.SearchItems(c.Query("q"))
	if err != nil {
		respondError(c, "Failed to search food items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food items retrieved successfully",
		"data":    items,
	})
}

// GetAllFoodItems godoc
// @Summary List every food item
// @Tags food
// @Produce json
// @Success 200 {object} map[string]interface{} "Food items retrieved successfully"
// @Router /food/items/all [get]
func (fc *FoodController) GetAllFoodItems(c *gin.Context) {
	items, err := fc.repo.AllItems()
	if err != nil {
		respondError(c, "Failed to retrieve food items", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food items retrieved successfully",
		"data":    items,
	})
}

// CreateFoodItem godoc
// @Summary Add a custom food item
// @Description Names are unique; duplicates are rejected
// @Tags food
// @Accept json
// @Produce json
// @Param item body models.FoodItem true "Food item data"
// @Success 201 {object} map[string]interface{} "Food item created successfully"
// @Failure 409 {object} map[string]interface{} "Duplicate name"
// @Router /food/items [post]
func (fc *FoodController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := fc.repo.CreateItem(&item); err != nil {
		respondError(c, "Failed to create food item", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food item created successfully",
		"data":    item,
	})
}
