package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/httpresp"
	"github.com/glowhub/salon-scheduler/internal/infra/cache"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	ucschedule "github.com/glowhub/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucschedule.CreateInternalAppointment
	rescheduleUC   *ucschedule.RescheduleAppointment
	cancelUC       *ucschedule.CancelAppointment
	completeUC     *ucschedule.CompleteAppointment
	myAgendaUC     *ucschedule.GetProfessionalAgenda
	availabilityUC *ucschedule.GetAvailability

	repo  domain.Repository
	cache *cache.Availability
}

func NewAppointmentHandler(
	createUC *ucschedule.CreateInternalAppointment,
	rescheduleUC *ucschedule.RescheduleAppointment,
	cancelUC *ucschedule.CancelAppointment,
	completeUC *ucschedule.CompleteAppointment,
	myAgendaUC *ucschedule.GetProfessionalAgenda,
	availabilityUC *ucschedule.GetAvailability,
	repo domain.Repository,
	availabilityCache *cache.Availability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		rescheduleUC:   rescheduleUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		myAgendaUC:     myAgendaUC,
		availabilityUC: availabilityUC,
		repo:           repo,
		cache:          availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID     string `json:"customer_id" binding:"required"`
	ProfessionalID string `json:"professional_id" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	Notes          string `json:"notes"`
	ColorCode      string `json:"color_code"`
}

type RescheduleAppointmentRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), sess, ucschedule.CreateInternalInput{
		CustomerID:     req.CustomerID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		StartTime:      start,
		Notes:          req.Notes,
		ColorCode:      req.ColorCode,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, sess.TenantID, ap.StartTime)

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (agenda do profissional logado)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	sess := middleware.GetSession(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	items, err := h.myAgendaUC.Execute(c.Request.Context(), sess, dateStr)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		}
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	sess := middleware.GetSession(c)
	id := c.Param("id")

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err1 := time.Parse(time.RFC3339, req.StartTime)
	end, err2 := time.Parse(time.RFC3339, req.EndTime)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	// horário antigo antes da troca, para liberar o dia desocupado no cache
	previous, err := h.repo.GetAppointment(c.Request.Context(), sess.TenantID, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_reschedule_appointment", "Erro ao remarcar agendamento.")
		}
		return
	}
	oldStart := previous.StartTime

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), sess, id, start, end)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_reschedule_appointment", "Erro ao remarcar agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, sess.TenantID, oldStart, ap.StartTime)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	sess := middleware.GetSession(c)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), sess, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, sess.TenantID, ap.StartTime)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	sess := middleware.GetSession(c)
	id := c.Param("id")

	ap, err := h.completeUC.Execute(c.Request.Context(), sess, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AVAILABILITY (interna, para montar o seletor de horários)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	sess := middleware.GetSession(c)

	serviceID := c.Query("service_id")
	dateStr := c.Query("date")
	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_service_or_date", "Serviço e data são obrigatórios.")
		return
	}

	if slots, ok := h.cache.Get(c.Request.Context(), sess.TenantID, serviceID, dateStr); ok {
		httpresp.List(c, slots)
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		TenantID:  sess.TenantID,
		ServiceID: serviceID,
		Date:      dateStr,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular disponibilidade.")
		}
		return
	}

	h.cache.Set(c.Request.Context(), sess.TenantID, serviceID, dateStr, slots)

	httpresp.List(c, slots)
}
