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

type MoveAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewMoveAppointment(
	repo domain.Repository,
	audit Auditor,
) *MoveAppointment {
	return &MoveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Move é o drag-and-drop do quadro do salão (só staff): o agendamento pode
// trocar de profissional e de horário na mesma operação. O fim é recalculado
// a partir da duração do serviço original; em caso de conflito nada é
// gravado e o chamador reverte o estado otimista da UI.
func (uc *MoveAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID string,
	newProfessionalID string,
	newStart time.Time,
) (*models.Appointment, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if !sess.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, sess.TenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanMutateSlot(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProfessional(ctx, sess.TenantID, newProfessionalID); err != nil {
		return nil, err
	}

	duration := time.Duration(ap.Service.DurationMinutes) * time.Minute
	if duration <= 0 {
		// serviço removido do catálogo: preserva o tamanho da janela original
		duration = ap.EndTime.Sub(ap.StartTime)
	}
	newEnd := newStart.Add(duration)

	if err := uc.repo.UpdateAppointmentSlot(
		ctx, ap, newProfessionalID, newStart, newEnd,
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: sess.TenantID,
		UserID:   &sess.UserID,
		Action:   "appointment_moved",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"professional_id": newProfessionalID,
			"start":           newStart,
		},
	})

	return ap, nil
}
