package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/food")
	{
		foodRoutes.POST("/log", foodController.LogFood)
		foodRoutes.GET("/log/user/:user_id", foodController.GetFoodLogsForDay)
		foodRoutes.GET("/items", foodController.SearchFoodItems)
		foodRoutes.GET("/items/all", foodController.GetAllFoodItems)
		foodRoutes.POST("/items", foodController.CreateFoodItem)
	}
}
