package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSummaryRoutes(router *gin.Engine, summaryController *controllers.SummaryController) {
	router.GET("/summary/:user_id", summaryController.GetDailySummary)
	router.GET("/progress/:user_id", summaryController.GetProgress)
}
