package schedule

import (
	"context"

	"github.com/glowhub/salon-scheduler/internal/audit"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

type CancelPublicAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewCancelPublicAppointment(
	repo domain.Repository,
	audit Auditor,
) *CancelPublicAppointment {
	return &CancelPublicAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Cancelamento via API pública (autenticada por chave compartilhada, sem
// sessão de usuário). Mesma máquina de estados do cancelamento interno.
func (uc *CancelPublicAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	tenant, err := uc.repo.GetTenant(ctx, ap.TenantID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(tenant.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: ap.TenantID,
		Action:   "appointment_canceled_public",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
