package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/httperr"
	"github.com/BruksfildServices01/barber-crm/internal/httpresp"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	"github.com/BruksfildServices01/barber-crm/internal/models"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "could not load audit logs")
		return
	}

	httpresp.List(c, logs)
}
