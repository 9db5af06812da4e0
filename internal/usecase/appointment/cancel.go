package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

type Cancel struct {
	repo        domain.Repository
	cache       AvailabilityCache
	audit       *audit.Dispatcher
	loc         *time.Location
	cutoffHours int

	// now is overridable in tests; cutoff math happens in the clinic's
	// reference zone, never the caller's.
	now func() time.Time
}

func NewCancel(
	repo domain.Repository,
	cache AvailabilityCache,
	audit *audit.Dispatcher,
	loc *time.Location,
	cutoffHours int,
) *Cancel {
	return &Cancel{
		repo:        repo,
		cache:       cache,
		audit:       audit,
		loc:         loc,
		cutoffHours: cutoffHours,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// WithClock fixes the use case's clock. Test helper.
func (uc *Cancel) WithClock(now func() time.Time) *Cancel {
	uc.now = now
	return uc
}

func (uc *Cancel) Execute(
	ctx context.Context,
	patientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	// Only booked and cancelled appointments are eligible lookups, so a
	// completed appointment reports as not found.
	ap, err := uc.repo.GetCancellableForPatient(ctx, appointmentID, patientID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		ap.DateString()+" "+ap.StartTime,
		uc.loc,
	)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	cutoff := start.Add(-time.Duration(uc.cutoffHours) * time.Hour)
	if !now.Before(cutoff) {
		return nil, domain.ErrTooLateToCancel
	}

	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.HealthcareProfessionalID, ap.DateString())
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &patientID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
