package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/glowhub/salon-scheduler/internal/audit"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
)

// fakeRepo é uma implementação em memória do gateway de dados, com a mesma
// semântica de conflito da versão Postgres (status <> CANCELED + bloqueios,
// intervalos semiabertos).
type fakeRepo struct {
	tenants      map[string]*models.Tenant
	services     map[string]*models.Service
	users        []models.User
	customers    []*models.Customer
	hours        map[string]map[int]*models.BusinessHours
	appointments []*models.Appointment
	blockouts    []*models.Blockout

	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tenants:  map[string]*models.Tenant{},
		services: map[string]*models.Service{},
		hours:    map[string]map[int]*models.BusinessHours{},
	}
}

type noopAuditor struct{}

func (noopAuditor) Dispatch(audit.Event) {}

func (f *fakeRepo) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

// -------- seed helpers --------

func (f *fakeRepo) addTenant(t *models.Tenant) *models.Tenant {
	if t.ID == "" {
		t.ID = f.id()
	}
	f.tenants[t.ID] = t
	return t
}

func (f *fakeRepo) addService(s *models.Service) *models.Service {
	if s.ID == "" {
		s.ID = f.id()
	}
	f.services[s.ID] = s
	return s
}

func (f *fakeRepo) addProfessional(tenantID, name string) *models.User {
	u := models.User{
		ID:       f.id(),
		TenantID: tenantID,
		Name:     name,
		Role:     models.RoleProfessional,
		IsActive: true,
	}
	f.users = append(f.users, u)
	return &f.users[len(f.users)-1]
}

func (f *fakeRepo) setHours(tenantID string, weekday int, open, close string) {
	if f.hours[tenantID] == nil {
		f.hours[tenantID] = map[int]*models.BusinessHours{}
	}
	f.hours[tenantID][weekday] = &models.BusinessHours{
		TenantID: tenantID,
		Weekday:  weekday,
		Open:     open,
		Close:    close,
		Enabled:  true,
	}
}

func (f *fakeRepo) seedAppointment(ap *models.Appointment) *models.Appointment {
	if ap.ID == "" {
		ap.ID = f.id()
	}
	if ap.Status == "" {
		ap.Status = string(domain.StatusScheduled)
	}
	f.appointments = append(f.appointments, ap)
	return ap
}

// -------- Repository --------

func (f *fakeRepo) GetTenant(_ context.Context, tenantID string) (*models.Tenant, error) {
	if t, ok := f.tenants[tenantID]; ok {
		return t, nil
	}
	return nil, httperr.ErrBusiness("tenant_not_found")
}

func (f *fakeRepo) GetTenantBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.PublicSlug == slug {
			return t, nil
		}
	}
	return nil, httperr.ErrBusiness("tenant_not_found")
}

func (f *fakeRepo) GetService(_ context.Context, tenantID, serviceID string) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.TenantID == tenantID {
		return s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (f *fakeRepo) ListActiveProfessionals(_ context.Context, tenantID string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.TenantID == tenantID && u.Role == models.RoleProfessional && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetProfessional(_ context.Context, tenantID, professionalID string) (*models.User, error) {
	for i := range f.users {
		u := &f.users[i]
		if u.ID == professionalID && u.TenantID == tenantID && u.Role == models.RoleProfessional {
			return u, nil
		}
	}
	return nil, httperr.ErrBusiness("professional_not_found")
}

func (f *fakeRepo) GetCustomer(_ context.Context, tenantID, customerID string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == customerID && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, httperr.ErrBusiness("customer_not_found")
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, tenantID, name, phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.TenantID == tenantID && c.Phone == phone {
			return c, nil
		}
	}
	c := &models.Customer{ID: f.id(), TenantID: tenantID, Name: name, Phone: phone}
	f.customers = append(f.customers, c)
	return c, nil
}

func (f *fakeRepo) GetBusinessHours(_ context.Context, tenantID string, weekday int) (*models.BusinessHours, error) {
	if byDay, ok := f.hours[tenantID]; ok {
		return byDay[weekday], nil
	}
	return nil, nil
}

func (f *fakeRepo) hasConflict(tenantID, professionalID string, start, end time.Time, excludeID string) bool {
	for _, ap := range f.appointments {
		if ap.TenantID != tenantID || ap.ProfessionalID != professionalID {
			continue
		}
		if ap.Status == string(domain.StatusCanceled) || ap.ID == excludeID {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	for _, b := range f.blockouts {
		if b.TenantID != tenantID || b.ProfessionalID != professionalID {
			continue
		}
		if domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap.TenantID, ap.ProfessionalID, ap.StartTime, ap.EndTime, "") {
		return httperr.ErrBusiness("time_conflict")
	}
	if ap.ID == "" {
		ap.ID = f.id()
	}
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointmentSlot(
	_ context.Context,
	ap *models.Appointment,
	professionalID string,
	start, end time.Time,
) error {
	if f.hasConflict(ap.TenantID, professionalID, start, end, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.ProfessionalID = professionalID
	ap.StartTime = start
	ap.EndTime = end
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, tenantID, appointmentID string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.TenantID == tenantID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListBusyAppointments(_ context.Context, tenantID string, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.TenantID != tenantID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAgendaAppointments(_ context.Context, tenantID string, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.TenantID != tenantID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListProfessionalAgenda(_ context.Context, tenantID, professionalID string, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.TenantID == tenantID && ap.ProfessionalID == professionalID &&
			domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) CreateBlockout(_ context.Context, b *models.Blockout) error {
	if b.ID == "" {
		b.ID = f.id()
	}
	f.blockouts = append(f.blockouts, b)
	return nil
}

func (f *fakeRepo) ListBlockouts(_ context.Context, tenantID string, start, end time.Time) ([]models.Blockout, error) {
	var out []models.Blockout
	for _, b := range f.blockouts {
		if b.TenantID == tenantID && domain.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
