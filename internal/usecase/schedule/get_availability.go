package schedule

import (
	"context"
	"time"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	policy domain.Policy
}

func NewGetAvailability(repo domain.Repository, policy domain.Policy) *GetAvailability {
	return &GetAvailability{repo: repo, policy: policy}
}

// Execute calcula os horários iniciais agendáveis de um serviço em uma data,
// cruzando horário de funcionamento, profissionais ativos e as janelas
// ocupadas (agendamentos não cancelados + bloqueios). Resultado sempre em
// ordem crescente; lista vazia (nunca nil) para salão fechado ou sem equipe.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	tenant, err := uc.repo.GetTenant(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(tenant.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	bh, err := uc.repo.GetBusinessHours(ctx, in.TenantID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	open, close, ok := domain.DayWindow(bh, day)
	if !ok {
		return []domain.Slot{}, nil
	}

	pros, err := uc.repo.ListActiveProfessionals(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if len(pros) == 0 {
		return []domain.Slot{}, nil
	}

	appointments, err := uc.repo.ListBusyAppointments(ctx, in.TenantID, open, close)
	if err != nil {
		return nil, err
	}

	blockouts, err := uc.repo.ListBlockouts(ctx, in.TenantID, open, close)
	if err != nil {
		return nil, err
	}

	busy := domain.BusyByProfessional(appointments, blockouts, "")

	step := uc.policy.StepFor(tenant.SlotStepMinutes)
	duration := time.Duration(service.DurationMinutes) * time.Minute

	now := timezone.NowIn(tenant.Timezone)
	minStart := now.Add(uc.policy.LeadFor(tenant.MinLeadMinutes))

	slots := []domain.Slot{}

	for cur := open; cur.Before(close); cur = cur.Add(step) {

		// antecedência mínima por instante absoluto, mesmo critério
		// usado na criação do agendamento
		if cur.Before(minStart) {
			continue
		}

		slotEnd := cur.Add(duration)

		// o serviço não pode passar do fechamento
		if slotEnd.After(close) {
			break
		}

		var free []string
		for _, pro := range pros {
			if !domain.HasConflict(cur, slotEnd, busy[pro.ID]) {
				free = append(free, pro.ID)
			}
		}

		if len(free) > 0 {
			slots = append(slots, domain.Slot{
				Time:          cur.Format("15:04"),
				Professionals: free,
			})
		}
	}

	return slots, nil
}
