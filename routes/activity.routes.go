package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activity")
	{
		activityRoutes.POST("/", activityController.LogActivity)
		activityRoutes.GET("/user/:user_id", activityController.GetActivitiesByUserID)
	}
}
