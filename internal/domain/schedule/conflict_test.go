package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glowhub/salon-scheduler/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 14, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
		{"partial por cima", at(10, 15), at(10, 45), at(10, 0), at(10, 30), true},
		{"partial por baixo", at(9, 45), at(10, 15), at(10, 0), at(10, 30), true},
		{"contained", at(10, 5), at(10, 25), at(10, 0), at(10, 30), true},
		{"containing", at(9, 0), at(11, 0), at(10, 0), at(10, 30), true},
		{"adjacente antes", at(9, 30), at(10, 0), at(10, 0), at(10, 30), false},
		{"adjacente depois", at(10, 30), at(11, 0), at(10, 0), at(10, 30), false},
		{"disjoint", at(8, 0), at(9, 0), at(10, 0), at(10, 30), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
		})
	}
}

// Um corte de 45 min das 09:45 cruza o slot de 10:00 e o de 10:15, mas não o
// de 10:30.
func TestHasConflict_LongServiceAcrossSlots(t *testing.T) {
	busy := []BusyInterval{{Start: at(9, 45), End: at(10, 30)}}

	assert.True(t, HasConflict(at(10, 0), at(10, 45), busy))
	assert.True(t, HasConflict(at(10, 15), at(11, 0), busy))
	assert.False(t, HasConflict(at(10, 30), at(11, 15), busy))
}

func TestBusyByProfessional(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", ProfessionalID: "p1", StartTime: at(10, 0), EndTime: at(10, 30), Status: string(StatusScheduled)},
		{ID: "a2", ProfessionalID: "p1", StartTime: at(11, 0), EndTime: at(11, 30), Status: string(StatusCanceled)},
		{ID: "a3", ProfessionalID: "p2", StartTime: at(10, 0), EndTime: at(11, 0), Status: string(StatusCompleted)},
	}
	blockouts := []models.Blockout{
		{ProfessionalID: "p1", StartTime: at(14, 0), EndTime: at(15, 0)},
	}

	busy := BusyByProfessional(appointments, blockouts, "")

	// cancelado fica de fora; concluído segue ocupando a janela
	assert.Len(t, busy["p1"], 2)
	assert.Len(t, busy["p2"], 1)

	// remarcação exclui o próprio agendamento do conjunto
	busy = BusyByProfessional(appointments, blockouts, "a1")
	assert.Len(t, busy["p1"], 1)
	assert.Equal(t, at(14, 0), busy["p1"][0].Start)
}
