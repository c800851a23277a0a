package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/", userController.CreateUser)
		userRoutes.GET("/current", userController.GetCurrentUser)
		userRoutes.GET("/:id", userController.GetUserByID)
		userRoutes.PUT("/:id", userController.UpdateUser)
		userRoutes.PATCH("/:id", userController.PatchUser)
		userRoutes.GET("/:id/streak", userController.GetStreak)
		userRoutes.GET("/:id/metrics", userController.GetMetrics)
	}
}
