package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/blobstore"
)

type HealthHandler struct {
	db    *gorm.DB
	blobs blobstore.Store
}

func NewHealthHandler(db *gorm.DB, blobs blobstore.Store) *HealthHandler {
	return &HealthHandler{db: db, blobs: blobs}
}

// Health reports 503 when either backing store is unreachable.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok", "blobstore": "ok"}
	status := http.StatusOK

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if _, _, err := h.blobs.Get(ctx, "healthcheck"); err != nil {
		checks["blobstore"] = "down"
		status = http.StatusServiceUnavailable
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
