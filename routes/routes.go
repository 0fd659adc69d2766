package routes

import (
	"os"

	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/controllers"
	"github.com/rikuto-mikado/fitness-tracker/middlewares"
	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	analytics := controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB))
	realtime := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Shared exercise catalog; reads are public, writes require a login.
	r.GET("/exercise-types", controllers.ListExerciseTypes)
	r.POST("/exercise-types", middlewares.AuthMiddleware(), controllers.CreateExerciseType)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("", controllers.DeleteAccount)
	}

	weights := r.Group("/weights")
	weights.Use(middlewares.AuthMiddleware())
	{
		weights.POST("", controllers.RecordWeight)
		weights.GET("", controllers.ListWeights)
		weights.GET("/latest", controllers.GetLatestWeight)
		weights.PUT("/:id", controllers.UpdateWeightNote)
		weights.DELETE("/:id", controllers.DeleteWeight)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("", controllers.LogWorkout)
		workouts.GET("", controllers.ListWorkouts)
		workouts.DELETE("/:id", controllers.DeleteWorkout)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.POST("", controllers.SetGoal)
		goals.GET("", controllers.ListGoals)
		goals.GET("/:id/progress", controllers.GetGoalProgress)
		goals.PUT("/:id/progress", controllers.UpdateGoalProgress)
		goals.PUT("/:id/status", controllers.UpdateGoalStatus)
	}

	dash := r.Group("/analytics")
	dash.Use(middlewares.AuthMiddleware())
	{
		dash.GET("/weight-series", analytics.WeightSeries)
		dash.GET("/calories", analytics.DailyCalories)
		dash.GET("/weekly", analytics.WeeklyCalories)
		dash.GET("/summary", analytics.Summary)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtime.EventsWS)
	}

	// Seeding endpoints, enabled outside production only
	if os.Getenv("APP_ENV") != "production" {
		dev := r.Group("/dev")
		{
			dev.POST("/seed/catalog", controllers.SeedCatalog)
			dev.POST("/seed/demo", controllers.SeedDemo)
		}
	}

	return r
}
