package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.Engine, planController *controllers.PlanController) {
	planRoutes := router.Group("/plans")
	{
		planRoutes.POST("/", planController.CreatePlan)
		planRoutes.GET("/user/:user_id", planController.GetPlansByUserID)
		planRoutes.DELETE("/:id", planController.DeletePlan)
	}
}
