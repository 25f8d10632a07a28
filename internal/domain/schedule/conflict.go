package schedule

import (
	"time"

	"github.com/glowhub/salon-scheduler/internal/models"
)

// BusyInterval é uma janela ocupada de um profissional, venha de um
// agendamento não cancelado ou de um bloqueio manual.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps aplica a regra de intervalos semiabertos [s1,e1) x [s2,e2):
// há sobreposição sse s1 < e2 && e1 > s2. Intervalos encostados
// (fim de um == início do outro) NÃO conflitam.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

func HasConflict(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// BusyByProfessional monta o espaço de conflito de um dia a partir dos
// agendamentos (não cancelados) e bloqueios do tenant, agrupado por
// profissional. excludeAppointmentID tira um agendamento do próprio conjunto
// (caso de remarcação).
func BusyByProfessional(
	appointments []models.Appointment,
	blockouts []models.Blockout,
	excludeAppointmentID string,
) map[string][]BusyInterval {

	busy := make(map[string][]BusyInterval)

	for _, ap := range appointments {
		if ap.Status == string(StatusCanceled) {
			continue
		}
		if excludeAppointmentID != "" && ap.ID == excludeAppointmentID {
			continue
		}
		busy[ap.ProfessionalID] = append(busy[ap.ProfessionalID], BusyInterval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	for _, b := range blockouts {
		busy[b.ProfessionalID] = append(busy[b.ProfessionalID], BusyInterval{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return busy
}
