package schedule

import "github.com/glowhub/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

// ===============================
// Validations
// ===============================

// Só agendamentos ativos podem ser cancelados; cancelar de novo é erro,
// nunca um no-op silencioso.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMutateSlot cobre remarcação e drag-and-drop: COMPLETED e CANCELED são
// estados terminais.
func CanMutateSlot(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
