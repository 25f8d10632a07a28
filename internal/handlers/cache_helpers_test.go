package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffectedDays_RescheduleAcrossDays(t *testing.T) {
	oldStart := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	newStart := time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC)

	days := affectedDays(time.UTC, oldStart, newStart)
	assert.Equal(t, []string{"2026-09-14", "2026-09-16"}, days)
}

func TestAffectedDays_SameDayDedups(t *testing.T) {
	oldStart := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	newStart := time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC)

	days := affectedDays(time.UTC, oldStart, newStart)
	assert.Equal(t, []string{"2026-09-14"}, days)
}

func TestAffectedDays_UsesTenantTimezone(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:00 UTC ainda é o dia anterior em São Paulo
	at := time.Date(2026, 9, 15, 1, 0, 0, 0, time.UTC)
	days := affectedDays(sp, at)
	assert.Equal(t, []string{"2026-09-14"}, days)
}
