package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/progtrack/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	metricsController *controllers.MetricsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	schedule := v1.Group("/schedule")
	{
		schedule.POST("", scheduleController.UploadSchedule)
		schedule.GET("/upcoming", scheduleController.GetUpcomingSessions)
		schedule.GET("/weekends", scheduleController.GetWeekendSessions)
	}

	v1.GET("/metrics", metricsController.GetMetrics)
}
