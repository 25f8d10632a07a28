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

type CreateBlockoutInput struct {
	ProfessionalID string
	StartTime      time.Time
	EndTime        time.Time
	Reason         string
}

type CreateBlockout struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateBlockout(
	repo domain.Repository,
	audit Auditor,
) *CreateBlockout {
	return &CreateBlockout{
		repo:  repo,
		audit: audit,
	}
}

// Bloqueio manual de agenda. Bloqueios podem se sobrepor entre si sem
// validação; eles só entram no espaço de conflito dos agendamentos.
func (uc *CreateBlockout) Execute(
	ctx context.Context,
	sess session.Session,
	in CreateBlockoutInput,
) (*models.Blockout, error) {

	if !sess.Valid() {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if !sess.CanActOn(in.ProfessionalID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if !in.StartTime.Before(in.EndTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	if _, err := uc.repo.GetProfessional(ctx, sess.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	b := &models.Blockout{
		TenantID:       sess.TenantID,
		ProfessionalID: in.ProfessionalID,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Reason:         in.Reason,
	}

	if err := uc.repo.CreateBlockout(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: sess.TenantID,
		UserID:   &sess.UserID,
		Action:   "blockout_created",
		Entity:   "blockout",
		EntityID: &b.ID,
	})

	return b, nil
}
