package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/infra/cache"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	ucschedule "github.com/glowhub/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	salonUC    *ucschedule.GetSalonAgenda
	monthUC    *ucschedule.GetMonthAgenda
	moveUC     *ucschedule.MoveAppointment
	blockoutUC *ucschedule.CreateBlockout

	repo  domain.Repository
	cache *cache.Availability
}

func NewAgendaHandler(
	salonUC *ucschedule.GetSalonAgenda,
	monthUC *ucschedule.GetMonthAgenda,
	moveUC *ucschedule.MoveAppointment,
	blockoutUC *ucschedule.CreateBlockout,
	repo domain.Repository,
	availabilityCache *cache.Availability,
) *AgendaHandler {
	return &AgendaHandler{
		salonUC:    salonUC,
		monthUC:    monthUC,
		moveUC:     moveUC,
		blockoutUC: blockoutUC,
		repo:       repo,
		cache:      availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MoveAppointmentRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
}

type CreateBlockoutRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Reason         string `json:"reason"`
}

// ======================================================
// QUADRO DO DIA
// ======================================================

func (h *AgendaHandler) Day(c *gin.Context) {
	sess := middleware.GetSession(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	board, err := h.salonUC.Execute(c.Request.Context(), sess, dateStr)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_load_agenda", "Erro ao carregar a agenda.")
		}
		return
	}

	c.JSON(http.StatusOK, board)
}

// ======================================================
// CALENDÁRIO MENSAL
// ======================================================

func (h *AgendaHandler) Month(c *gin.Context) {
	sess := middleware.GetSession(c)

	start, err1 := time.Parse(time.RFC3339, c.Query("start"))
	end, err2 := time.Parse(time.RFC3339, c.Query("end"))
	if err1 != nil || err2 != nil || !start.Before(end) {
		httperr.BadRequest(c, "invalid_range", "Período inválido.")
		return
	}

	events, err := h.monthUC.Execute(c.Request.Context(), sess, start, end)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_load_agenda", "Erro ao carregar a agenda.")
		}
		return
	}

	c.JSON(http.StatusOK, events)
}

// ======================================================
// MOVE (drag-and-drop)
// ======================================================

func (h *AgendaHandler) Move(c *gin.Context) {
	sess := middleware.GetSession(c)
	id := c.Param("id")

	var req MoveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	// horário antigo antes da troca, para liberar o dia desocupado no cache
	previous, err := h.repo.GetAppointment(c.Request.Context(), sess.TenantID, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_move_appointment", "Erro ao mover agendamento.")
		}
		return
	}
	oldStart := previous.StartTime

	ap, err := h.moveUC.Execute(c.Request.Context(), sess, id, req.ProfessionalID, start)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_move_appointment", "Erro ao mover agendamento.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, sess.TenantID, oldStart, ap.StartTime)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// BLOCKOUT
// ======================================================

func (h *AgendaHandler) CreateBlockout(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req CreateBlockoutRequest
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

	b, err := h.blockoutUC.Execute(c.Request.Context(), sess, ucschedule.CreateBlockoutInput{
		ProfessionalID: req.ProfessionalID,
		StartTime:      start,
		EndTime:        end,
		Reason:         req.Reason,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_blockout", "Erro ao criar bloqueio.")
		}
		return
	}

	invalidateAvailability(c, h.repo, h.cache, sess.TenantID, b.StartTime, b.EndTime)

	c.JSON(http.StatusCreated, b)
}
