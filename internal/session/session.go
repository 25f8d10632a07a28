package session

import "github.com/glowhub/salon-scheduler/internal/models"

// Session é o contexto explícito do chamador. Toda operação do núcleo de
// agendamento recebe um destes como parâmetro; nada roda com estado ambiente.
type Session struct {
	TenantID string
	UserID   string
	Role     string
}

func (s Session) Valid() bool {
	return s.TenantID != "" && s.UserID != ""
}

// IsStaff cobre os papéis com visão da agenda inteira do salão.
func (s Session) IsStaff() bool {
	return s.Role == models.RoleAdmin || s.Role == models.RoleReception
}

func (s Session) IsProfessional() bool {
	return s.Role == models.RoleProfessional
}

// CanActOn decide se o chamador pode mexer na agenda de professionalID:
// staff mexe em qualquer uma do tenant, profissional apenas na própria.
func (s Session) CanActOn(professionalID string) bool {
	if s.IsStaff() {
		return true
	}
	return s.UserID == professionalID
}
