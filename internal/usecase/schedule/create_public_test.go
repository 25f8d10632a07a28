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

func publicFixture() (*fakeRepo, *models.Tenant, *models.Service) {
	f := newFakeRepo()
	tenant := f.addTenant(&models.Tenant{
		Timezone:             "UTC",
		PublicSlug:           "studio-glow",
		PublicBookingEnabled: true,
	})
	service := f.addService(&models.Service{
		TenantID:        tenant.ID,
		Name:            "Corte",
		DurationMinutes: 30,
		IsActive:        true,
	})
	return f, tenant, service
}

// horário seguro: bem além da antecedência mínima
func farFuture(h, m int) time.Time {
	return time.Date(2030, 3, 4, h, m, 0, 0, time.UTC)
}

func TestCreatePublic_DedupesCustomerByPhone(t *testing.T) {
	f, tenant, service := publicFixture()
	pro := f.addProfessional(tenant.ID, "Ana")

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})

	first, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		StartTime:      farFuture(10, 0),
		CustomerName:   "Joana",
		CustomerPhone:  "11988887777",
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		StartTime:      farFuture(11, 0),
		CustomerName:   "Joana M.",
		CustomerPhone:  "11988887777",
	})
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Len(t, f.customers, 1)
	assert.Equal(t, farFuture(10, 30), first.EndTime)
}

func TestCreatePublic_FallsBackToFreeProfessional(t *testing.T) {
	f, tenant, service := publicFixture()
	ana := f.addProfessional(tenant.ID, "Ana")
	bia := f.addProfessional(tenant.ID, "Bia")

	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: ana.ID,
		ServiceID:      service.ID,
		StartTime:      farFuture(10, 0),
		EndTime:        farFuture(10, 30),
	})

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	ap, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:      tenant.ID,
		ServiceID:     service.ID,
		StartTime:     farFuture(10, 0),
		CustomerName:  "Carla",
		CustomerPhone: "11977776666",
	})
	require.NoError(t, err)
	assert.Equal(t, bia.ID, ap.ProfessionalID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
}

func TestCreatePublic_NoProfessionalAvailable(t *testing.T) {
	f, tenant, service := publicFixture()
	ana := f.addProfessional(tenant.ID, "Ana")

	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: ana.ID,
		ServiceID:      service.ID,
		StartTime:      farFuture(10, 0),
		EndTime:        farFuture(10, 30),
	})

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	_, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:      tenant.ID,
		ServiceID:     service.ID,
		StartTime:     farFuture(10, 15),
		CustomerName:  "Carla",
		CustomerPhone: "11977776666",
	})
	assert.True(t, httperr.IsBusiness(err, "no_professional_available"))
	assert.Len(t, f.appointments, 1)
}

func TestCreatePublic_ExplicitProfessionalConflict(t *testing.T) {
	f, tenant, service := publicFixture()
	ana := f.addProfessional(tenant.ID, "Ana")
	f.addProfessional(tenant.ID, "Bia")

	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: ana.ID,
		ServiceID:      service.ID,
		StartTime:      farFuture(10, 0),
		EndTime:        farFuture(10, 30),
	})

	// com profissional explícito não há fallback
	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	_, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: ana.ID,
		StartTime:      farFuture(10, 15),
		CustomerName:   "Carla",
		CustomerPhone:  "11977776666",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreatePublic_AdjacentSlotsDoNotConflict(t *testing.T) {
	f, tenant, service := publicFixture()
	ana := f.addProfessional(tenant.ID, "Ana")

	f.seedAppointment(&models.Appointment{
		TenantID:       tenant.ID,
		ProfessionalID: ana.ID,
		ServiceID:      service.ID,
		StartTime:      farFuture(10, 0),
		EndTime:        farFuture(10, 30),
	})

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	ap, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: ana.ID,
		StartTime:      farFuture(10, 30),
		CustomerName:   "Carla",
		CustomerPhone:  "11977776666",
	})
	require.NoError(t, err)
	assert.Equal(t, farFuture(11, 0), ap.EndTime)
}

func TestCreatePublic_TooSoon(t *testing.T) {
	f, tenant, service := publicFixture()
	pro := f.addProfessional(tenant.ID, "Ana")

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	_, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		StartTime:      time.Now().UTC().Add(30 * time.Minute),
		CustomerName:   "Carla",
		CustomerPhone:  "11977776666",
	})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreatePublic_BookingDisabled(t *testing.T) {
	f, tenant, service := publicFixture()
	pro := f.addProfessional(tenant.ID, "Ana")
	tenant.PublicBookingEnabled = false

	uc := NewCreatePublicAppointment(f, testPolicy, noopAuditor{})
	_, err := uc.Execute(context.Background(), CreatePublicInput{
		TenantID:       tenant.ID,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		StartTime:      farFuture(10, 0),
		CustomerName:   "Carla",
		CustomerPhone:  "11977776666",
	})
	assert.True(t, httperr.IsBusiness(err, "public_booking_disabled"))
}
