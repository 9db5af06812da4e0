package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.HealthcareProfessional, error)

	GetProfessionalByUserID(
		ctx context.Context,
		userID uint,
	) (*models.HealthcareProfessional, error)

	ListProfessionals(
		ctx context.Context,
		page int,
		pageSize int,
	) ([]models.HealthcareProfessional, int64, error)

	// -------- Appointment (create / conflict) --------
	ListBookedForDay(
		ctx context.Context,
		professionalID uint,
		date time.Time,
	) ([]models.Appointment, error)

	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetCancellableForPatient(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	GetForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (listing) --------
	ListForPatient(
		ctx context.Context,
		userID uint,
		statuses []Status,
		page int,
		pageSize int,
	) ([]models.Appointment, int64, error)

	ListForProfessional(
		ctx context.Context,
		professionalID uint,
		statuses []Status,
		page int,
		pageSize int,
	) ([]models.Appointment, int64, error)

	// -------- Sweep --------
	ListBookedUpTo(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)
}
