package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

// Resolve is the professional-side terminal transition: completed or
// cancelled.
type Resolve struct {
	repo  domain.Repository
	cache AvailabilityCache
	audit *audit.Dispatcher
	loc   *time.Location

	now func() time.Time
}

func NewResolve(
	repo domain.Repository,
	cache AvailabilityCache,
	audit *audit.Dispatcher,
	loc *time.Location,
) *Resolve {
	return &Resolve{
		repo:  repo,
		cache: cache,
		audit: audit,
		loc:   loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// WithClock fixes the use case's clock. Test helper.
func (uc *Resolve) WithClock(now func() time.Time) *Resolve {
	uc.now = now
	return uc
}

func (uc *Resolve) Execute(
	ctx context.Context,
	professionalUserID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	target, err := domain.ParseResolveStatus(status)
	if err != nil {
		return nil, err
	}

	pro, err := uc.repo.GetProfessionalByUserID(ctx, professionalUserID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	ap, err := uc.repo.GetForProfessional(ctx, appointmentID, pro.ID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	if err := domain.Resolve(ap, target, uc.now()); err != nil {
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
			UserID:   &professionalUserID,
			Action:   "appointment_" + string(target),
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
