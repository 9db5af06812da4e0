package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.HealthcareProfessional, error) {

	var pro models.HealthcareProfessional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *AppointmentGormRepository) GetProfessionalByUserID(
	ctx context.Context,
	userID uint,
) (*models.HealthcareProfessional, error) {

	var pro models.HealthcareProfessional
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *AppointmentGormRepository) ListProfessionals(
	ctx context.Context,
	page int,
	pageSize int,
) ([]models.HealthcareProfessional, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.HealthcareProfessional{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pros []models.HealthcareProfessional
	if err := r.db.WithContext(ctx).
		Preload("Specialty").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&pros).Error; err != nil {
		return nil, 0, err
	}

	return pros, total, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedForDay(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"healthcare_professional_id = ? AND date = ? AND status = ?",
			professionalID,
			date.Format("2006-01-02"),
			string(domain.StatusBooked),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// CreateBooked re-checks the overlap under a row lock inside one transaction.
// The re-check selects ids rather than an aggregate: Postgres does not allow
// FOR UPDATE together with aggregate functions. Start/end are zero-padded
// HH:MM strings, so lexicographic comparison in SQL matches time order.
func (r *AppointmentGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var blockers []models.Appointment
		if err := tx.
			Select("id").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"healthcare_professional_id = ? AND date = ? AND status = ? AND start_time < ? AND end_time > ?",
				ap.HealthcareProfessionalID,
				ap.Date.Format("2006-01-02"),
				string(domain.StatusBooked),
				ap.EndTime,
				ap.StartTime,
			).
			Find(&blockers).Error; err != nil {
			return err
		}

		if len(blockers) > 0 {
			return domain.ErrSlotUnavailable
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCancellableForPatient(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	// Completed appointments are not part of the cancellation lookup, so
	// they report as not found.
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND user_id = ? AND status IN ?",
			appointmentID,
			userID,
			[]string{string(domain.StatusBooked), string(domain.StatusCancelled)},
		).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND healthcare_professional_id = ?",
			appointmentID,
			professionalID,
		).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Appointment (listing)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPatient(
	ctx context.Context,
	userID uint,
	statuses []domain.Status,
	page int,
	pageSize int,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("user_id = ? AND status IN ?", userID, statusStrings(statuses)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statusStrings(statuses)).
		Preload("HealthcareProfessional.Specialty").
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) ListForProfessional(
	ctx context.Context,
	professionalID uint,
	statuses []domain.Status,
	page int,
	pageSize int,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"healthcare_professional_id = ? AND status IN ?",
			professionalID,
			statusStrings(statuses),
		).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"healthcare_professional_id = ? AND status IN ?",
			professionalID,
			statusStrings(statuses),
		).
		Preload("User").
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// --------------------------------------------------
// Sweep
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedUpTo(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND date <= ?",
			string(domain.StatusBooked),
			date.Format("2006-01-02"),
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
