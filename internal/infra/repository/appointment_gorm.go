package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GabrielAraujo027/Kalenner/internal/domain/scheduling"
	"github.com/GabrielAraujo027/Kalenner/internal/httperr"
	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	companyID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", serviceID, companyID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetActiveService(
	ctx context.Context,
	companyID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ? AND is_active = ?", serviceID, companyID, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetActiveProfessional(
	ctx context.Context,
	companyID uint,
	professionalID uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ? AND is_active = ?", professionalID, companyID, true).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *AppointmentGormRepository) GetLink(
	ctx context.Context,
	companyID uint,
	professionalID uint,
	serviceID uint,
) (*models.ProfessionalService, error) {

	// The join rows carry no company_id of their own; both ends are
	// checked against the caller's company.
	var link models.ProfessionalService
	err := r.db.WithContext(ctx).
		Joins("JOIN professionals ON professionals.id = professional_services.professional_id").
		Joins("JOIN services ON services.id = professional_services.service_id").
		Where(
			"professional_services.professional_id = ? AND professional_services.service_id = ? AND professionals.company_id = ? AND services.company_id = ?",
			professionalID, serviceID, companyID, companyID,
		).
		First(&link).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", appointmentID, companyID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	companyID uint,
	filter scheduling.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("company_id = ?", companyID)

	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.StartFrom != nil {
		q = q.Where("start >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		q = q.Where("start <= ?", *filter.StartTo)
	}
	if filter.ProfessionalID != nil {
		q = q.Where("professional_id = ?", *filter.ProfessionalID)
	}
	if filter.ServiceID != nil {
		q = q.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", int(*filter.Status))
	}

	var aps []models.Appointment
	if err := q.Order("start ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) AssertNoOverlap(
	ctx context.Context,
	companyID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	// Half-open interval test against Scheduled rows only. FOR UPDATE
	// keeps the matched rows locked until the surrounding transaction
	// commits, so two concurrent bookings cannot both pass the check.
	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"company_id = ? AND professional_id = ? AND status = ? AND start < ? AND \"end\" > ?",
			companyID,
			professionalID,
			int(scheduling.StatusScheduled),
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	// FOR UPDATE cannot ride on an aggregate, so pull the ids.
	var ids []uint
	if err := q.Limit(1).Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", appointmentID, companyID).
		Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(scheduling.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ scheduling.Repository = (*AppointmentGormRepository)(nil)
