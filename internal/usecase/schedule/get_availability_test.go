package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
)

var testPolicy = domain.Policy{SlotStepMinutes: 30, MinLeadMinutes: 120}

// 2026-09-14 é uma segunda-feira.
const monday = "2026-09-14"

func mondayAt(h, m int) time.Time {
	return time.Date(2026, 9, 14, h, m, 0, 0, time.UTC)
}

func availabilityFixture() (*fakeRepo, *models.Tenant, *models.Service, *models.User) {
	f := newFakeRepo()
	tenant := f.addTenant(&models.Tenant{Timezone: "UTC", PublicBookingEnabled: true})
	service := f.addService(&models.Service{TenantID: tenant.ID, Name: "Corte", DurationMinutes: 30, IsActive: true})
	pro := f.addProfessional(tenant.ID, "Ana")
	f.setHours(tenant.ID, 1, "09:00", "11:00")
	return f, tenant, service, pro
}

func TestGetAvailability_SkipsBusyWindows(t *testing.T) {
	f, tenant, service, pro := availabilityFixture()

	// corte das 09:45 às 10:30 derruba os slots de 09:30 e 10:00
	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: pro.ID,
		ServiceID:      service.ID,
		StartTime:      mondayAt(9, 45),
		EndTime:        mondayAt(10, 30),
	})

	uc := NewGetAvailability(f, testPolicy)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      monday,
	})
	require.NoError(t, err)

	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	assert.Equal(t, []string{"09:00", "10:30"}, times)
}

func TestGetAvailability_ServiceMustFitBeforeClose(t *testing.T) {
	f, tenant, _, _ := availabilityFixture()
	long := f.addService(&models.Service{TenantID: tenant.ID, Name: "Coloração", DurationMinutes: 90, IsActive: true})

	uc := NewGetAvailability(f, testPolicy)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: long.ID,
		Date:      monday,
	})
	require.NoError(t, err)

	// 09:00 e 09:30 terminam até as 11:00; 10:00 passaria do fechamento
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestGetAvailability_ClosedDayIsEmpty(t *testing.T) {
	f, tenant, service, _ := availabilityFixture()

	uc := NewGetAvailability(f, testPolicy)

	// domingo sem linha de funcionamento
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      "2026-09-13",
	})
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_NoActiveProfessionals(t *testing.T) {
	f := newFakeRepo()
	tenant := f.addTenant(&models.Tenant{Timezone: "UTC"})
	service := f.addService(&models.Service{TenantID: tenant.ID, DurationMinutes: 30, IsActive: true})
	f.setHours(tenant.ID, 1, "09:00", "11:00")

	uc := NewGetAvailability(f, testPolicy)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      monday,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ListsOnlyFreeProfessionals(t *testing.T) {
	f, tenant, service, ana := availabilityFixture()
	bia := f.addProfessional(tenant.ID, "Bia")

	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: ana.ID,
		ServiceID:      service.ID,
		StartTime:      mondayAt(9, 0),
		EndTime:        mondayAt(9, 30),
	})
	f.blockouts = append(f.blockouts, &models.Blockout{
		TenantID:       tenant.ID,
		ProfessionalID: bia.ID,
		StartTime:      mondayAt(10, 0),
		EndTime:        mondayAt(11, 0),
	})

	uc := NewGetAvailability(f, testPolicy)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      monday,
	})
	require.NoError(t, err)

	byTime := map[string][]string{}
	for _, s := range slots {
		byTime[s.Time] = s.Professionals
	}

	// 09:00: só a Bia; 09:30: as duas; 10:00 e 10:30: só a Ana
	assert.Equal(t, []string{bia.ID}, byTime["09:00"])
	assert.ElementsMatch(t, []string{ana.ID, bia.ID}, byTime["09:30"])
	assert.Equal(t, []string{ana.ID}, byTime["10:00"])
	assert.Equal(t, []string{ana.ID}, byTime["10:30"])
}

func TestGetAvailability_SameDayLeadTime(t *testing.T) {
	f := newFakeRepo()
	tenant := f.addTenant(&models.Tenant{Timezone: "UTC"})
	service := f.addService(&models.Service{TenantID: tenant.ID, DurationMinutes: 30, IsActive: true})
	f.addProfessional(tenant.ID, "Ana")

	today := time.Now().UTC()
	for wd := 0; wd < 7; wd++ {
		f.setHours(tenant.ID, wd, "00:00", "23:30")
	}

	uc := NewGetAvailability(f, testPolicy)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      today.Format("2006-01-02"),
	})
	require.NoError(t, err)

	// nenhum slot de hoje pode começar antes de agora + antecedência mínima
	minStart := today.Add(2 * time.Hour).Add(-time.Minute)
	for _, s := range slots {
		st, perr := time.Parse("15:04", s.Time)
		require.NoError(t, perr)
		slotStart := time.Date(today.Year(), today.Month(), today.Day(),
			st.Hour(), st.Minute(), 0, 0, time.UTC)
		assert.False(t, slotStart.Before(minStart), "slot %s fura a antecedência mínima", s.Time)
	}

	// a partir de agora + 2h todos os dias abrem completos
	later := today.Add(48 * time.Hour).Format("2006-01-02")
	slots, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      later,
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "00:00", slots[0].Time)
}

func TestGetAvailability_LeadTimeCrossesMidnight(t *testing.T) {
	f := newFakeRepo()
	tenant := f.addTenant(&models.Tenant{Timezone: "UTC"})
	service := f.addService(&models.Service{TenantID: tenant.ID, DurationMinutes: 30, IsActive: true})
	f.addProfessional(tenant.ID, "Ana")
	for wd := 0; wd < 7; wd++ {
		f.setHours(tenant.ID, wd, "00:00", "23:30")
	}

	// antecedência de 48h: amanhã inteiro ainda está dentro da janela de
	// bloqueio e não pode oferecer nenhum slot
	uc := NewGetAvailability(f, domain.Policy{SlotStepMinutes: 30, MinLeadMinutes: 48 * 60})

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      tomorrow,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)

	// três dias à frente já saiu da janela por inteiro
	ahead := time.Now().UTC().Add(72 * time.Hour).Format("2006-01-02")
	slots, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      ahead,
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "00:00", slots[0].Time)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	f, tenant, service, _ := availabilityFixture()

	uc := NewGetAvailability(f, testPolicy)
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: service.ID,
		Date:      "14/09/2026",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestGetAvailability_UnknownService(t *testing.T) {
	f, tenant, _, _ := availabilityFixture()

	uc := NewGetAvailability(f, testPolicy)
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: "nope",
		Date:      monday,
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
