package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

var errFakeNotFound = errors.New("record not found")

// fakeRepository backs the use case tests with in-memory state.
type fakeRepository struct {
	professionals []models.HealthcareProfessional
	appointments  []models.Appointment

	nextID    uint
	createErr error
	updateErr error
	updated   []uint
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) addProfessional(id, userID uint, specialty string) {
	f.professionals = append(f.professionals, models.HealthcareProfessional{
		ID:     id,
		UserID: userID,
		Specialty: models.Specialty{
			Name: specialty,
		},
	})
}

func (f *fakeRepository) addAppointment(ap models.Appointment) uint {
	if ap.ID == 0 {
		ap.ID = f.nextID
		f.nextID++
	}
	f.appointments = append(f.appointments, ap)
	return ap.ID
}

func (f *fakeRepository) GetProfessionalByID(_ context.Context, id uint) (*models.HealthcareProfessional, error) {
	for i := range f.professionals {
		if f.professionals[i].ID == id {
			return &f.professionals[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeRepository) GetProfessionalByUserID(_ context.Context, userID uint) (*models.HealthcareProfessional, error) {
	for i := range f.professionals {
		if f.professionals[i].UserID == userID {
			return &f.professionals[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeRepository) ListProfessionals(_ context.Context, page, pageSize int) ([]models.HealthcareProfessional, int64, error) {
	return f.professionals, int64(len(f.professionals)), nil
}

func (f *fakeRepository) ListBookedForDay(_ context.Context, professionalID uint, date time.Time) ([]models.Appointment, error) {
	day := date.Format("2006-01-02")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.HealthcareProfessionalID == professionalID &&
			ap.Status == string(domain.StatusBooked) &&
			ap.DateString() == day {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateBooked(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepository) GetCancellableForPatient(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.ID == appointmentID && ap.UserID == userID &&
			ap.Status != string(domain.StatusCompleted) {
			return ap, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeRepository) GetForProfessional(_ context.Context, appointmentID, professionalID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.ID == appointmentID && ap.HealthcareProfessionalID == professionalID {
			return ap, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, ap.ID)
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeRepository) ListForPatient(_ context.Context, userID uint, statuses []domain.Status, page, pageSize int) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID && statusMatches(ap.Status, statuses) {
			out = append(out, ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) ListForProfessional(_ context.Context, professionalID uint, statuses []domain.Status, page, pageSize int) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.HealthcareProfessionalID == professionalID && statusMatches(ap.Status, statuses) {
			out = append(out, ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) ListBookedUpTo(_ context.Context, date time.Time) ([]models.Appointment, error) {
	day := date.Format("2006-01-02")
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == string(domain.StatusBooked) && ap.DateString() <= day {
			out = append(out, ap)
		}
	}
	return out, nil
}

func statusMatches(status string, statuses []domain.Status) bool {
	for _, s := range statuses {
		if status == string(s) {
			return true
		}
	}
	return false
}

// fakeCache records availability cache traffic.
type fakeCache struct {
	store       map[string][]domain.Slot
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]domain.Slot{}}
}

func (f *fakeCache) key(professionalID uint, date string) string {
	return date
}

func (f *fakeCache) Get(_ context.Context, professionalID uint, date string) ([]domain.Slot, bool) {
	slots, ok := f.store[f.key(professionalID, date)]
	return slots, ok
}

func (f *fakeCache) Set(_ context.Context, professionalID uint, date string, slots []domain.Slot) {
	f.store[f.key(professionalID, date)] = slots
}

func (f *fakeCache) Invalidate(_ context.Context, professionalID uint, date string) {
	delete(f.store, f.key(professionalID, date))
	f.invalidated = append(f.invalidated, f.key(professionalID, date))
}
