package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderDeviceID   = "X-Device-ID"
	ContextDeviceID  = "deviceID"
	maxDeviceIDBytes = 128
)

// DeviceScope reads the client's install identifier. Session records are
// keyed under it.
func DeviceScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderDeviceID))
		if id == "" || len(id) > maxDeviceIDBytes || strings.ContainsAny(id, ": ") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_device_id"})
			return
		}
		c.Set(ContextDeviceID, id)
		c.Next()
	}
}
