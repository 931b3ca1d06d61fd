package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salonq/internal/middleware"
)

func userID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func salonID(c *gin.Context) string {
	return c.GetString(middleware.ContextSalonID)
}

func deviceID(c *gin.Context) string {
	return c.GetString(middleware.ContextDeviceID)
}
