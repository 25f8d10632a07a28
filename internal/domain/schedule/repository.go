package schedule

import (
	"context"
	"time"

	"github.com/glowhub/salon-scheduler/internal/models"
)

// Repository é o gateway de dados do núcleo de agendamento. Toda consulta é
// parametrizada pelo tenant; um id de outro tenant se comporta como
// inexistente. CreateAppointment e UpdateAppointmentSlot fazem a checagem de
// conflito e a escrita dentro da mesma transação.
type Repository interface {
	// -------- Tenant --------
	GetTenant(
		ctx context.Context,
		tenantID string,
	) (*models.Tenant, error)

	GetTenantBySlug(
		ctx context.Context,
		slug string,
	) (*models.Tenant, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		tenantID string,
		serviceID string,
	) (*models.Service, error)

	// -------- Staff --------
	ListActiveProfessionals(
		ctx context.Context,
		tenantID string,
	) ([]models.User, error)

	GetProfessional(
		ctx context.Context,
		tenantID string,
		professionalID string,
	) (*models.User, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		tenantID string,
		customerID string,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		tenantID string,
		name string,
		phone string,
	) (*models.Customer, error)

	// -------- Business hours --------
	GetBusinessHours(
		ctx context.Context,
		tenantID string,
		weekday int,
	) (*models.BusinessHours, error)

	// -------- Appointment (create / move / reschedule) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentSlot(
		ctx context.Context,
		ap *models.Appointment,
		professionalID string,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (lookup / state change) --------
	GetAppointment(
		ctx context.Context,
		tenantID string,
		appointmentID string,
	) (*models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Agenda reads --------
	ListBusyAppointments(
		ctx context.Context,
		tenantID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAgendaAppointments(
		ctx context.Context,
		tenantID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListProfessionalAgenda(
		ctx context.Context,
		tenantID string,
		professionalID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Blockouts --------
	CreateBlockout(
		ctx context.Context,
		b *models.Blockout,
	) error

	ListBlockouts(
		ctx context.Context,
		tenantID string,
		start time.Time,
		end time.Time,
	) ([]models.Blockout, error)
}
