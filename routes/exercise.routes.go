package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController) {
	exerciseRoutes := router.Group("/exercise")
	{
		exerciseRoutes.POST("/", exerciseController.LogExercise)
		exerciseRoutes.GET("/user/:user_id", exerciseController.GetExercisesByUserID)
		exerciseRoutes.GET("/catalog", exerciseController.GetCatalog)
	}
}
