package schedule

import (
	"context"
	"fmt"
	"time"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/dto"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/session"
)

type GetMonthAgenda struct {
	repo domain.Repository
}

func NewGetMonthAgenda(repo domain.Repository) *GetMonthAgenda {
	return &GetMonthAgenda{repo: repo}
}

// Eventos do calendário mensal: agendamentos não cancelados e bloqueios do
// período, achatados em uma única lista tipada.
func (uc *GetMonthAgenda) Execute(
	ctx context.Context,
	sess session.Session,
	start time.Time,
	end time.Time,
) (*dto.MonthAgendaDTO, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	pros, err := uc.repo.ListActiveProfessionals(ctx, sess.TenantID)
	if err != nil {
		return nil, err
	}

	proName := make(map[string]string, len(pros))
	out := &dto.MonthAgendaDTO{
		Professionals: make([]dto.ProfessionalDTO, 0, len(pros)),
		Events:        []dto.CalendarEventDTO{},
	}

	for _, p := range pros {
		proName[p.ID] = p.Name
		out.Professionals = append(out.Professionals, dto.ProfessionalDTO{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	appointments, err := uc.repo.ListAgendaAppointments(ctx, sess.TenantID, start, end)
	if err != nil {
		return nil, err
	}

	blockouts, err := uc.repo.ListBlockouts(ctx, sess.TenantID, start, end)
	if err != nil {
		return nil, err
	}

	for _, ap := range appointments {
		if ap.Status == string(domain.StatusCanceled) {
			continue
		}
		out.Events = append(out.Events, dto.CalendarEventDTO{
			ID:               ap.ID,
			Title:            fmt.Sprintf("%s - %s", ap.Customer.Name, ap.Service.Name),
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: ap.Professional.Name,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Type:             "APPOINTMENT",
			ColorCode:        ap.ColorCode,
		})
	}

	for _, b := range blockouts {
		title := b.Reason
		if title == "" {
			title = "Bloqueado"
		}
		out.Events = append(out.Events, dto.CalendarEventDTO{
			ID:               b.ID,
			Title:            title,
			ProfessionalID:   b.ProfessionalID,
			ProfessionalName: proName[b.ProfessionalID],
			StartTime:        b.StartTime,
			EndTime:          b.EndTime,
			Type:             "BLOCKOUT",
		})
	}

	return out, nil
}
