package handlers

import (
	"time"
)

// parseISOTime aceita RFC3339 completo; sem offset, interpreta o horário no
// fuso informado (o fuso do tenant, para o fluxo público).
func parseISOTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
