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

// ======================================================
// INPUT
// ======================================================

type CreateInternalInput struct {
	CustomerID     string
	ProfessionalID string
	ServiceID      string
	StartTime      time.Time
	Notes          string
	ColorCode      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInternalAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateInternalAppointment(
	repo domain.Repository,
	audit Auditor,
) *CreateInternalAppointment {
	return &CreateInternalAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Criação interna (recepção/admin escolhe o profissional; profissional só
// agenda na própria agenda). O fim é derivado da duração do serviço e a
// inserção é checada contra conflitos na mesma transação.
func (uc *CreateInternalAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateInternalInput,
) (*models.Appointment, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if !sess.CanActOn(in.ProfessionalID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if _, err := uc.repo.GetProfessional(ctx, sess.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetCustomer(ctx, sess.TenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, sess.TenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := in.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	ap := &models.Appointment{
		TenantID:       sess.TenantID,
		CustomerID:     customer.ID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      service.ID,
		StartTime:      in.StartTime,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
		ColorCode:      in.ColorCode,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: sess.TenantID,
		UserID:   &sess.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
