package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"timehuddle/handlers"
)

// RegisterRoutes registers all availability endpoints.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	r.GET("/healthz", handlers.HealthHandler)

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	avail := api.Group("/availability")
	{
		avail.GET("/:scheduleId", ah.GetScheduleAvailability) // single-user intervals or slots
		avail.POST("/team", ah.GetTeamAvailability)           // collective / round robin / managed merge
		avail.POST("/lucky-user", ah.PickLuckyUser)           // round-robin assignment preview
	}

	api.GET("/users/:userId/availability", ah.GetUserAvailability) // union across the user's schedules
}
