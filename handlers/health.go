package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timehuddle/utils"
)

// HealthHandler reports the last known state of Mongo and Redis.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
