package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// RegisterMeRoutes exposes the active-profile shortcuts the UI uses on the
// dashboard. The middleware resolves which profile "me" is; the regular
// handlers do the rest.
func RegisterMeRoutes(
	router *gin.Engine,
	users repository.UserRepository,
	userController *controllers.UserController,
	summaryController *controllers.SummaryController,
) {
	meRoutes := router.Group("/me")
	meRoutes.Use(middleware.ActiveProfile(users))
	{
		meRoutes.GET("", userController.GetUserByID)
		meRoutes.GET("/streak", userController.GetStreak)
		meRoutes.GET("/metrics", userController.GetMetrics)
		meRoutes.GET("/summary", summaryController.GetDailySummary)
		meRoutes.GET("/progress", summaryController.GetProgress)
	}
}
