package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/httpresp"
	"github.com/glowhub/salon-scheduler/internal/infra/cache"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/timezone"
	ucschedule "github.com/glowhub/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atende a API pública de reservas, autenticada por chave de
// API compartilhada (middleware) e escopada pelo slug do tenant na rota.
type PublicHandler struct {
	db *gorm.DB

	availabilityUC *ucschedule.GetAvailability
	createUC       *ucschedule.CreatePublicAppointment
	cancelUC       *ucschedule.CancelPublicAppointment

	repo  domain.Repository
	cache *cache.Availability
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucschedule.GetAvailability,
	createUC *ucschedule.CreatePublicAppointment,
	cancelUC *ucschedule.CancelPublicAppointment,
	repo domain.Repository,
	availabilityCache *cache.Availability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		repo:           repo,
		cache:          availabilityCache,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type PublicCreateAppointmentRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	ProfessionalID string `json:"professional_id"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone" binding:"required"`
}

type PublicPatchAppointmentRequest struct {
	Status string `json:"status" binding:"required"`
}

type PublicServiceDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

type PublicTenantInfoDTO struct {
	Name                 string             `json:"name"`
	Slug                 string             `json:"slug"`
	Timezone             string             `json:"timezone"`
	PublicBookingEnabled bool               `json:"public_booking_enabled"`
	Services             []PublicServiceDTO `json:"services"`
}

// ======================================================
// INFO
// ======================================================

func (h *PublicHandler) Info(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_tenant", "Erro ao carregar dados do salão.")
		return
	}

	out := PublicTenantInfoDTO{
		Name:                 tenant.Name,
		Slug:                 tenant.PublicSlug,
		Timezone:             tenant.Timezone,
		PublicBookingEnabled: tenant.PublicBookingEnabled,
		Services:             make([]PublicServiceDTO, 0, len(services)),
	}
	for _, s := range services {
		out.Services = append(out.Services, PublicServiceDTO{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Category:        s.Category,
		})
	}

	httpresp.OK(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	serviceID := c.Query("service_id")
	dateStr := c.Query("date")
	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_service_or_date", "Serviço e data são obrigatórios.")
		return
	}

	if slots, hit := h.cache.Get(c.Request.Context(), tenant.ID, serviceID, dateStr); hit {
		httpresp.List(c, slots)
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: serviceID,
		Date:      dateStr,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular disponibilidade.")
		}
		return
	}

	h.cache.Set(c.Request.Context(), tenant.ID, serviceID, dateStr, slots)

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	loc := timezone.Location(tenant.Timezone)
	start, err := parseISOTime(req.StartTime, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucschedule.CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      req.ServiceID,
		StartTime:      start,
		ProfessionalID: req.ProfessionalID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, tenant.ID, ap.StartTime)

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// GET / PATCH (cancelamento)
// ======================================================

func (h *PublicHandler) GetAppointment(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	ap, ok := h.appointmentForTenant(c, tenant.ID)
	if !ok {
		return
	}

	httpresp.OK(c, ap)
}

// PATCH público: o único campo mutável é o status, e o único valor aceito é
// CANCELED. Qualquer outra mudança continua exclusiva do painel interno.
func (h *PublicHandler) PatchAppointment(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	ap, ok := h.appointmentForTenant(c, tenant.ID)
	if !ok {
		return
	}

	var req PublicPatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != string(domain.StatusCanceled) {
		httperr.Unprocessable(c, "invalid_state", "Transição de status não permitida.")
		return
	}

	updated, err := h.cancelUC.Execute(c.Request.Context(), ap.ID)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, tenant.ID, updated.StartTime)

	httpresp.OK(c, updated)
}

// ======================================================
// HELPERS
// ======================================================

func (h *PublicHandler) tenantFromSlug(c *gin.Context) (*models.Tenant, bool) {
	tenant, err := h.repo.GetTenantBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_load_tenant", "Erro ao carregar dados do salão.")
		}
		return nil, false
	}
	return tenant, true
}

func (h *PublicHandler) appointmentForTenant(c *gin.Context, tenantID string) (*models.Appointment, bool) {
	ap, err := h.repo.GetAppointment(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_load_appointment", "Erro ao carregar agendamento.")
		}
		return nil, false
	}
	return ap, true
}
