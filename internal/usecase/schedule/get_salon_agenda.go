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

type GetSalonAgenda struct {
	repo domain.Repository
}

func NewGetSalonAgenda(repo domain.Repository) *GetSalonAgenda {
	return &GetSalonAgenda{repo: repo}
}

// Quadro do salão inteiro (todas as colunas de profissional) para um dia,
// a leitura por trás do drag-and-drop. Só staff enxerga a agenda dos outros.
func (uc *GetSalonAgenda) Execute(
	ctx context.Context,
	sess session.Session,
	date string,
) (*dto.SalonAgendaDTO, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}
	if !sess.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
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

	pros, err := uc.repo.ListActiveProfessionals(ctx, sess.TenantID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAgendaAppointments(ctx, sess.TenantID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blockouts, err := uc.repo.ListBlockouts(ctx, sess.TenantID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := &dto.SalonAgendaDTO{
		Professionals: make([]dto.ProfessionalDTO, 0, len(pros)),
		Appointments:  make([]dto.AgendaAppointmentDTO, 0, len(appointments)),
		Blockouts:     make([]dto.AgendaBlockoutDTO, 0, len(blockouts)),
	}

	for _, p := range pros {
		out.Professionals = append(out.Professionals, dto.ProfessionalDTO{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	for _, ap := range appointments {
		category := ap.Service.Category
		if category == "" {
			category = "Geral"
		}
		out.Appointments = append(out.Appointments, dto.AgendaAppointmentDTO{
			ID:             ap.ID,
			ProfessionalID: ap.ProfessionalID,
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			Status:         ap.Status,
			CustomerName:   ap.Customer.Name,
			ServiceName:    ap.Service.Name,
			CategoryName:   category,
			ColorCode:      ap.ColorCode,
		})
	}

	for _, b := range blockouts {
		out.Blockouts = append(out.Blockouts, dto.AgendaBlockoutDTO{
			ID:             b.ID,
			ProfessionalID: b.ProfessionalID,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			Reason:         b.Reason,
		})
	}

	return out, nil
}
