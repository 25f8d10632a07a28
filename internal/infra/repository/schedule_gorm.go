package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/httperr"
	"github.com/glowhub/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTenant(
	ctx context.Context,
	tenantID string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("id = ?", tenantID).
		First(&tenant).Error; err != nil {
		return nil, notFoundOr(err, "tenant_not_found")
	}
	return &tenant, nil
}

func (r *ScheduleGormRepository) GetTenantBySlug(
	ctx context.Context,
	slug string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("public_slug = ?", slug).
		First(&tenant).Error; err != nil {
		return nil, notFoundOr(err, "tenant_not_found")
	}
	return &tenant, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	tenantID string,
	serviceID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		return nil, notFoundOr(err, "service_not_found")
	}
	return &service, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *ScheduleGormRepository) ListActiveProfessionals(
	ctx context.Context,
	tenantID string,
) ([]models.User, error) {

	var pros []models.User
	if err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND role = ? AND is_active = ?",
			tenantID, models.RoleProfessional, true,
		).
		Order("name ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *ScheduleGormRepository) GetProfessional(
	ctx context.Context,
	tenantID string,
	professionalID string,
) (*models.User, error) {

	var pro models.User
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND tenant_id = ? AND role = ?",
			professionalID, tenantID, models.RoleProfessional,
		).
		First(&pro).Error; err != nil {
		return nil, notFoundOr(err, "professional_not_found")
	}
	return &pro, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *ScheduleGormRepository) GetCustomer(
	ctx context.Context,
	tenantID string,
	customerID string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", customerID, tenantID).
		First(&customer).Error; err != nil {
		return nil, notFoundOr(err, "customer_not_found")
	}
	return &customer, nil
}

func (r *ScheduleGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	tenantID string,
	name string,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND phone = ?", tenantID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		TenantID: tenantID,
		Name:     name,
		Phone:    phone,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		// Corrida entre dois agendamentos do mesmo telefone: o índice único
		// rejeita o segundo insert e o cliente já existente é reaproveitado.
		if httperr.IsUniqueViolation(err) {
			var existing models.Customer
			if ferr := r.db.WithContext(ctx).
				Where("tenant_id = ? AND phone = ?", tenantID, phone).
				First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBusinessHours(
	ctx context.Context,
	tenantID string,
	weekday int,
) (*models.BusinessHours, error) {

	var bh models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND weekday = ?", tenantID, weekday).
		First(&bh).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dia sem configuração = fechado.
			return nil, nil
		}
		return nil, err
	}
	return &bh, nil
}

// --------------------------------------------------
// Appointment (create / move / reschedule)
// --------------------------------------------------

// conflictScanQuery monta a varredura de conflito da escrita: seleciona os
// ids das linhas não canceladas do profissional que cruzam a janela,
// trancando-as com FOR UPDATE. O lock exige linhas concretas, então a query
// materializa os ids em vez de agregar (Postgres rejeita FOR UPDATE com
// count).
func conflictScanQuery(
	tx *gorm.DB,
	tenantID string,
	professionalID string,
	start time.Time,
	end time.Time,
	excludeAppointmentID string,
) *gorm.DB {

	q := tx.
		Model(&models.Appointment{}).
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"tenant_id = ? AND professional_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			tenantID, professionalID, string(domain.StatusCanceled), end, start,
		)

	if excludeAppointmentID != "" {
		q = q.Where("id <> ?", excludeAppointmentID)
	}

	return q
}

// assertNoConflictLocked roda dentro da transação de escrita: tranca as linhas
// não canceladas do profissional (FOR UPDATE) e varre os bloqueios na mesma
// leitura. Duas requisições concorrentes na mesma janela serializam aqui; a
// constraint de exclusão do Postgres é a rede de segurança final.
func assertNoConflictLocked(
	tx *gorm.DB,
	tenantID string,
	professionalID string,
	start time.Time,
	end time.Time,
	excludeAppointmentID string,
) error {

	var ids []string
	if err := conflictScanQuery(
		tx, tenantID, professionalID, start, end, excludeAppointmentID,
	).Find(&ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	var count int64
	if err := tx.
		Model(&models.Blockout{}).
		Where(
			"tenant_id = ? AND professional_id = ? AND start_time < ? AND end_time > ?",
			tenantID, professionalID, end, start,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflictLocked(
			tx, ap.TenantID, ap.ProfessionalID, ap.StartTime, ap.EndTime, "",
		); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *ScheduleGormRepository) UpdateAppointmentSlot(
	ctx context.Context,
	ap *models.Appointment,
	professionalID string,
	start time.Time,
	end time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoConflictLocked(
			tx, ap.TenantID, professionalID, start, end, ap.ID,
		); err != nil {
			return err
		}

		return tx.
			Model(&models.Appointment{}).
			Where("id = ? AND tenant_id = ?", ap.ID, ap.TenantID).
			Updates(map[string]any{
				"professional_id": professionalID,
				"start_time":      start,
				"end_time":        end,
			}).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	if err != nil {
		return err
	}

	ap.ProfessionalID = professionalID
	ap.StartTime = start
	ap.EndTime = end
	return nil
}

// --------------------------------------------------
// Appointment (lookup / state change)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	tenantID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Preload("Professional").
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Agenda reads
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBusyAppointments(
	ctx context.Context,
	tenantID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "start_time", "end_time", "status").
		Where(
			"tenant_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			tenantID, string(domain.StatusCanceled), end, start,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAgendaAppointments(
	ctx context.Context,
	tenantID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Professional").
		Where(
			"tenant_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			tenantID, string(domain.StatusCanceled), start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListProfessionalAgenda(
	ctx context.Context,
	tenantID string,
	professionalID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"tenant_id = ? AND professional_id = ? AND start_time >= ? AND start_time < ?",
			tenantID, professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Blockouts
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlockout(
	ctx context.Context,
	b *models.Blockout,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) ListBlockouts(
	ctx context.Context,
	tenantID string,
	start time.Time,
	end time.Time,
) ([]models.Blockout, error) {

	var blockouts []models.Blockout
	if err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND start_time < ? AND end_time > ?",
			tenantID, end, start,
		).
		Order("start_time ASC").
		Find(&blockouts).Error; err != nil {
		return nil, err
	}
	return blockouts, nil
}

// --------------------------------------------------

func notFoundOr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
