package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/httpresp"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	IsActive        *bool    `json:"is_active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	sess := middleware.GetSession(c)

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ?", sess.TenantID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	sess := middleware.GetSession(c)

	if !sess.IsStaff() {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta operação.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		TenantID:        sess.TenantID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        req.Category,
		IsActive:        true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	sess := middleware.GetSession(c)
	id := c.Param("id")

	if !sess.IsStaff() {
		httperr.Forbidden(c, "forbidden", "Sem permissão para esta operação.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, sess.TenantID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}
