package schedule

import "time"

type AvailabilityInput struct {
	TenantID  string
	ServiceID string
	// Date no formato YYYY-MM-DD, interpretada no fuso do tenant.
	Date string
}

// Slot é um horário inicial com a lista de profissionais livres para
// executar o serviço inteiro a partir dele.
type Slot struct {
	Time          string   `json:"time"`
	Professionals []string `json:"professionals"`
}

// Policy são os defaults operacionais do servidor; um tenant pode
// sobrescrever com valores próprios (> 0) no cadastro.
type Policy struct {
	SlotStepMinutes int
	MinLeadMinutes  int
}

func (p Policy) StepFor(tenantOverride int) time.Duration {
	if tenantOverride > 0 {
		return time.Duration(tenantOverride) * time.Minute
	}
	return time.Duration(p.SlotStepMinutes) * time.Minute
}

func (p Policy) LeadFor(tenantOverride int) time.Duration {
	if tenantOverride > 0 {
		return time.Duration(tenantOverride) * time.Minute
	}
	return time.Duration(p.MinLeadMinutes) * time.Minute
}
