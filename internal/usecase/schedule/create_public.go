package schedule

import (
	"context"
	"time"

	"github.com/glowhub/salon-scheduler/internal/audit"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicInput struct {
	TenantID  string
	ServiceID string
	StartTime time.Time

	// Opcional; vazio deixa o sistema escolher um profissional livre.
	ProfessionalID string

	CustomerName  string
	CustomerPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicAppointment struct {
	repo   domain.Repository
	policy domain.Policy
	audit  Auditor
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	policy domain.Policy,
	audit Auditor,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:   repo,
		policy: policy,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Agendamento público (sem sessão). O cliente é resolvido/criado pelo
// telefone dentro do tenant. Sem profissional explícito, percorre os
// profissionais ativos e fica com o primeiro cuja agenda aceita a janela.
// A inserção checada é quem decide, então uma corrida com outra reserva
// simplesmente avança para o próximo profissional.
func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicInput,
) (*models.Appointment, error) {

	tenant, err := uc.repo.GetTenant(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.PublicBookingEnabled {
		return nil, httperr.ErrBusiness("public_booking_disabled")
	}

	now := timezone.NowIn(tenant.Timezone)
	if in.StartTime.Before(now.Add(uc.policy.LeadFor(tenant.MinLeadMinutes))) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := in.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.TenantID,
		in.CustomerName,
		in.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}

	build := func(professionalID string) *models.Appointment {
		return &models.Appointment{
			TenantID:       in.TenantID,
			CustomerID:     customer.ID,
			ProfessionalID: professionalID,
			ServiceID:      service.ID,
			StartTime:      in.StartTime,
			EndTime:        end,
			Status:         string(domain.InitialStatus()),
		}
	}

	var created *models.Appointment

	if in.ProfessionalID != "" {
		if _, err := uc.repo.GetProfessional(ctx, in.TenantID, in.ProfessionalID); err != nil {
			return nil, err
		}

		created = build(in.ProfessionalID)
		if err := uc.repo.CreateAppointment(ctx, created); err != nil {
			return nil, err
		}
	} else {
		pros, err := uc.repo.ListActiveProfessionals(ctx, in.TenantID)
		if err != nil {
			return nil, err
		}
		if len(pros) == 0 {
			return nil, httperr.ErrBusiness("no_professional_available")
		}

		for _, pro := range pros {
			candidate := build(pro.ID)
			err := uc.repo.CreateAppointment(ctx, candidate)
			if err == nil {
				created = candidate
				break
			}
			if httperr.IsBusiness(err, "time_conflict") {
				continue
			}
			return nil, err
		}

		if created == nil {
			return nil, httperr.ErrBusiness("no_professional_available")
		}
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		Action:   "appointment_created_public",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"customer_phone": in.CustomerPhone,
		},
	})

	return created, nil
}
