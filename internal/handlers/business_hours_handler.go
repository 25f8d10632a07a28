package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type BusinessDayConfig struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)

	var hours []models.BusinessHours
	if err := h.db.
		Where("tenant_id = ?", sess.TenantID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_business_hours", "Erro ao buscar horário de funcionamento.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *BusinessHoursHandler) Update(c *gin.Context) {
	sess := middleware.GetSession(c)

	if !sess.IsStaff() {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta operação.")
		return
	}

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.db.Where("tenant_id = ?", sess.TenantID).Delete(&models.BusinessHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Erro ao salvar horário de funcionamento.")
		return
	}

	var toCreate []models.BusinessHours
	for _, d := range req.Days {
		bh := models.BusinessHours{
			TenantID: sess.TenantID,
			Weekday:  d.Weekday,
			Enabled:  d.Enabled,
			Open:     d.Open,
			Close:    d.Close,
		}
		toCreate = append(toCreate, bh)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_business_hours", "Erro ao salvar horário de funcionamento.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
