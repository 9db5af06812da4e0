package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
)

// Sweep auto-completes booked appointments whose end has passed. It runs over
// every matching row each invocation; an error aborts the rest of the run but
// leaves earlier updates committed.
type Sweep struct {
	repo  domain.Repository
	cache AvailabilityCache
	loc   *time.Location

	now func() time.Time
}

func NewSweep(repo domain.Repository, cache AvailabilityCache, loc *time.Location) *Sweep {
	return &Sweep{
		repo:  repo,
		cache: cache,
		loc:   loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// WithClock fixes the use case's clock. Test helper.
func (uc *Sweep) WithClock(now func() time.Time) *Sweep {
	uc.now = now
	return uc
}

func (uc *Sweep) Execute(ctx context.Context) (int, error) {
	now := uc.now()

	apps, err := uc.repo.ListBookedUpTo(ctx, now)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range apps {
		ap := &apps[i]

		end, err := time.ParseInLocation(
			"2006-01-02 15:04",
			ap.DateString()+" "+ap.EndTime,
			uc.loc,
		)
		if err != nil {
			continue
		}

		if end.After(now) {
			continue
		}

		if err := domain.Resolve(ap, domain.StatusCompleted, now); err != nil {
			continue
		}

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return completed, err
		}

		if uc.cache != nil {
			uc.cache.Invalidate(ctx, ap.HealthcareProfessionalID, ap.DateString())
		}

		completed++
	}

	return completed, nil
}
