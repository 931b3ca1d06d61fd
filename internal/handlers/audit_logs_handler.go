package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type AuditLogQuery struct {
	Action   string `form:"action"`
	Entity   string `form:"entity"`
	EntityID string `form:"entity_id"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (q *AuditLogQuery) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
}

// List pages through the caller's salon audit trail, newest first.
// from and to are YYYY-MM-DD and both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var params AuditLogQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		httperr.BadRequest(c, "invalid_query", err.Error())
		return
	}
	params.normalize()

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("salon_id = ?", salonID(c))

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if params.Action != "" {
		q = q.Where("action = ?", params.Action)
	}
	if params.Entity != "" {
		q = q.Where("entity = ?", params.Entity)
	}
	if params.EntityID != "" {
		q = q.Where("entity_id = ?", params.EntityID)
	}
	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			httperr.BadRequest(c, "invalid_query", "from must be YYYY-MM-DD")
			return
		}
		q = q.Where("created_at >= ?", from)
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			httperr.BadRequest(c, "invalid_query", "to must be YYYY-MM-DD")
			return
		}
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  params.Page,
		"limit": params.Limit,
		"total": total,
		"logs":  logs,
	})
}
