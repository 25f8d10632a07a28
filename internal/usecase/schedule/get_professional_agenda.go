package schedule

import (
	"context"
	"time"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/dto"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/session"
	"github.com/glowhub/salon-scheduler/internal/timezone"
)

type GetProfessionalAgenda struct {
	repo domain.Repository
}

func NewGetProfessionalAgenda(repo domain.Repository) *GetProfessionalAgenda {
	return &GetProfessionalAgenda{repo: repo}
}

// Agenda do dia do próprio profissional logado, em ordem crescente, todos os
// status (a visão "minha agenda" mostra cancelados riscados).
func (uc *GetProfessionalAgenda) Execute(
	ctx context.Context,
	sess session.Session,
	date string,
) ([]dto.ProfessionalAppointmentDTO, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	tenant, err := uc.repo.GetTenant(ctx, sess.TenantID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(tenant.Timezone)
	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListProfessionalAgenda(
		ctx, sess.TenantID, sess.UserID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfessionalAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ProfessionalAppointmentDTO{
			ID:              ap.ID,
			StartTime:       ap.StartTime,
			EndTime:         ap.EndTime,
			Status:          ap.Status,
			CustomerID:      ap.Customer.ID,
			CustomerName:    ap.Customer.Name,
			CustomerPhone:   ap.Customer.Phone,
			ServiceID:       ap.Service.ID,
			ServiceName:     ap.Service.Name,
			DurationMinutes: ap.Service.DurationMinutes,
			Price:           ap.Service.Price,
		})
	}

	return out, nil
}
