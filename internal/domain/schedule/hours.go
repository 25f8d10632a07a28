package schedule

import (
	"time"

	"github.com/glowhub/salon-scheduler/internal/models"
)

// DayWindow resolve a janela de funcionamento [open, close) de uma data no
// fuso do tenant. ok=false quando o dia está desabilitado ou sem horário.
func DayWindow(bh *models.BusinessHours, date time.Time) (open, close time.Time, ok bool) {
	if bh == nil || !bh.Enabled || bh.Open == "" || bh.Close == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := date.Location()

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	open, okOpen := parseHM(bh.Open)
	close, okClose := parseHM(bh.Close)
	if !okOpen || !okClose || !open.Before(close) {
		return time.Time{}, time.Time{}, false
	}

	return open, close, true
}
