package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/httpresp"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// Trilha de auditoria do tenant, mais recente primeiro. Restrita ao ADMIN.
func (h *AuditLogsHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)

	if sess.Role != models.RoleAdmin {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta operação.")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.
		Where("tenant_id = ?", sess.TenantID).
		Order("created_at DESC").
		Limit(limit)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
