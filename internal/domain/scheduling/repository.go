package scheduling

import (
	"context"
	"time"

	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// ListFilter narrows an appointment listing. Nil fields are ignored.
type ListFilter struct {
	StartFrom      *time.Time
	StartTo        *time.Time
	ProfessionalID *uint
	ServiceID      *uint
	Status         *Status
	ClientID       *string
}

// Repository is the persistence boundary of the scheduling core. Every
// method takes the caller's companyID explicitly; implementations must
// never return rows from another company.
type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		companyID uint,
		serviceID uint,
	) (*models.Service, error)

	GetActiveService(
		ctx context.Context,
		companyID uint,
		serviceID uint,
	) (*models.Service, error)

	GetActiveProfessional(
		ctx context.Context,
		companyID uint,
		professionalID uint,
	) (*models.Professional, error)

	// GetLink returns the ProfessionalService row for the pair, or
	// (nil, nil) when no link exists.
	GetLink(
		ctx context.Context,
		companyID uint,
		professionalID uint,
		serviceID uint,
	) (*models.ProfessionalService, error)

	// -------- Appointments --------
	GetAppointment(
		ctx context.Context,
		companyID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		companyID uint,
		filter ListFilter,
	) ([]models.Appointment, error)

	// AssertNoOverlap fails with the time_conflict business error when a
	// Scheduled appointment for the professional intersects [start, end).
	// excludeID skips one appointment (reschedule of itself); zero skips
	// nothing. Inside a Transaction the matched rows stay locked until
	// commit.
	AssertNoOverlap(
		ctx context.Context,
		companyID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		companyID uint,
		appointmentID uint,
	) error

	// Transaction runs fn against a repository bound to one database
	// transaction, committing on nil and rolling back on error.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
