package api

import (
	"net/http"

	"fittrack/internal/repository"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	allowedOrigin string,
	workoutService service.WorkoutService,
	goalService service.GoalService,
	statsService service.StatsService,
	achievementService service.AchievementService,
	eventService service.EventService,
	exportService service.ExportService,
	notificationRepo repository.NotificationRepository,
) {

	workoutHandler := NewWorkoutHandler(workoutService)
	goalHandler := NewGoalHandler(goalService)
	statsHandler := NewStatsHandler(statsService)
	achievementHandler := NewAchievementHandler(achievementService)
	eventHandler := NewEventHandler(eventService)
	exportHandler := NewExportHandler(exportService)
	notificationHandler := NewNotificationHandler(notificationRepo)

	router.Use(CORSMiddleware(allowedOrigin))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Workout Routes ---
		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		// --- Goal Routes ---
		goalGroup := apiV1.Group("/goals")
		{
			goalGroup.POST("", goalHandler.CreateGoal)
			goalGroup.GET("", goalHandler.GetGoals)
			goalGroup.DELETE("/:id", goalHandler.DeleteGoal)
		}

		// --- Statistics & Charts ---
		statsGroup := apiV1.Group("/stats")
		{
			statsGroup.GET("/summary", statsHandler.GetSummary)
			statsGroup.GET("/charts/duration", statsHandler.GetWeeklyDuration)
			statsGroup.GET("/charts/calories", statsHandler.GetCaloriesByType)
			statsGroup.GET("/charts/types", statsHandler.GetTypeDistribution)
		}

		// --- Achievements ---
		apiV1.GET("/achievements", achievementHandler.GetAchievements)

		// --- Event Countdown ---
		eventGroup := apiV1.Group("/event")
		{
			eventGroup.PUT("", eventHandler.SetEvent)
			eventGroup.GET("", eventHandler.GetCountdown)
			eventGroup.DELETE("", eventHandler.ClearEvent)
		}

		// --- Notifications (polled by the frontend for toasts) ---
		apiV1.GET("/notifications", notificationHandler.GetNotifications)

		// --- Summary Export ---
		apiV1.POST("/export/summary", exportHandler.ExportSummary)
		apiV1.DELETE("/export/summary/:name", exportHandler.DeleteReport)

		// --- Motivational Quote ---
		apiV1.GET("/motivation", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"quote": service.RandomQuote()})
		})
	}
}
