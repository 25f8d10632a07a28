package schedule

import (
	"context"
	"time"

	"github.com/glowhub/salon-scheduler/internal/audit"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/session"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit Auditor,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Remarcação: só de SCHEDULED, só pelo dono (ou staff), excluindo o próprio
// agendamento do conjunto de conflito. Start e end mudam juntos ou nada muda.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID string,
	start time.Time,
	end time.Time,
) (*models.Appointment, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	ap, err := uc.repo.GetAppointment(ctx, sess.TenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	if !sess.CanActOn(ap.ProfessionalID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.CanMutateSlot(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentSlot(
		ctx, ap, ap.ProfessionalID, start, end,
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: sess.TenantID,
		UserID:   &sess.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
