package schedule

import (
	"context"

	"github.com/glowhub/salon-scheduler/internal/audit"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/session"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewCancelAppointment(
	repo domain.Repository,
	audit Auditor,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID string,
) (*models.Appointment, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	tenant, err := uc.repo.GetTenant(ctx, sess.TenantID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, sess.TenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	if !sess.CanActOn(ap.ProfessionalID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := timezone.NowIn(tenant.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: sess.TenantID,
		UserID:   &sess.UserID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
