package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

type TenantHandler struct {
	db *gorm.DB
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{db: db}
}

type UpdateTenantRequest struct {
	Name                 *string `json:"name"`
	Phone                *string `json:"phone"`
	Address              *string `json:"address"`
	Timezone             *string `json:"timezone"`
	PublicBookingEnabled *bool   `json:"public_booking_enabled"`
	SlotStepMinutes      *int    `json:"slot_step_minutes"`
	MinLeadMinutes       *int    `json:"min_lead_minutes"`
}

func (h *TenantHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)

	var tenant models.Tenant
	if err := h.db.First(&tenant, "id = ?", sess.TenantID).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Estabelecimento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandler) Update(c *gin.Context) {
	sess := middleware.GetSession(c)

	if !sess.IsStaff() {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta operação.")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var tenant models.Tenant
	if err := h.db.First(&tenant, "id = ?", sess.TenantID).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Estabelecimento não encontrado.")
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Address != nil {
		tenant.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		tenant.Timezone = *req.Timezone
	}
	if req.PublicBookingEnabled != nil {
		tenant.PublicBookingEnabled = *req.PublicBookingEnabled
	}
	if req.SlotStepMinutes != nil && *req.SlotStepMinutes >= 0 {
		tenant.SlotStepMinutes = *req.SlotStepMinutes
	}
	if req.MinLeadMinutes != nil && *req.MinLeadMinutes >= 0 {
		tenant.MinLeadMinutes = *req.MinLeadMinutes
	}

	if err := h.db.Save(&tenant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tenant", "Erro ao atualizar estabelecimento.")
		return
	}

	c.JSON(http.StatusOK, tenant)
}
