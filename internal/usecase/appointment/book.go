package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

// AvailabilityCache is the slice of the cache the booking flow needs.
type AvailabilityCache interface {
	Get(ctx context.Context, professionalID uint, date string) ([]domain.Slot, bool)
	Set(ctx context.Context, professionalID uint, date string, slots []domain.Slot)
	Invalidate(ctx context.Context, professionalID uint, date string)
}

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ProfessionalID uint
	Date           string // YYYY-MM-DD, format-checked at the boundary
	StartTime      string // HH:MM
	EndTime        string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo   domain.Repository
	policy domain.WorkingHours
	cache  AvailabilityCache
	audit  *audit.Dispatcher
	loc    *time.Location
}

func NewBook(
	repo domain.Repository,
	policy domain.WorkingHours,
	cache AvailabilityCache,
	audit *audit.Dispatcher,
	loc *time.Location,
) *Book {
	return &Book{
		repo:   repo,
		policy: policy,
		cache:  cache,
		audit:  audit,
		loc:    loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
	patientID uint,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Requested range
	// --------------------------------------------------
	rng, err := domain.NewTimeRange(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Working-hours window
	// --------------------------------------------------
	// Out-of-window requests get the generic unavailable error and no
	// availability payload.
	if !uc.policy.IsWithinWindow(rng) {
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// 3. Maximum duration
	// --------------------------------------------------
	if uc.policy.ExceedsMaxDuration(rng) {
		return nil, domain.ErrMaxDurationExceeded
	}

	// --------------------------------------------------
	// 4. Professional
	// --------------------------------------------------
	if _, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID); err != nil {
		return nil, domain.ErrNotFound
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidRange
	}

	// --------------------------------------------------
	// 5. Conflict against the day's booked ranges
	// --------------------------------------------------
	booked, err := uc.repo.ListBookedForDay(ctx, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	ranges := bookedRanges(booked)
	for _, b := range ranges {
		if rng.Overlaps(b) {
			return nil, &domain.ConflictError{
				Date:           in.Date,
				BookedSlots:    domain.SlotsFromRanges(ranges),
				AvailableSlots: uc.freeSlots(ctx, in.ProfessionalID, in.Date, ranges),
			}
		}
	}

	// --------------------------------------------------
	// 6. Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:                   patientID,
		HealthcareProfessionalID: in.ProfessionalID,
		Date:                     date,
		StartTime:                rng.Start.String(),
		EndTime:                  rng.End.String(),
		Status:                   string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooked(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ProfessionalID, in.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &patientID,
			Action:   "appointment_booked",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

func (uc *Book) freeSlots(
	ctx context.Context,
	professionalID uint,
	date string,
	ranges []domain.TimeRange,
) []domain.Slot {

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, professionalID, date); ok {
			return slots
		}
	}

	slots := domain.FreeSlots(ranges, uc.policy)

	if uc.cache != nil {
		uc.cache.Set(ctx, professionalID, date, slots)
	}

	return slots
}

// bookedRanges keeps the repository's ascending order; rows with malformed
// times are skipped rather than failing the whole request.
func bookedRanges(apps []models.Appointment) []domain.TimeRange {
	out := make([]domain.TimeRange, 0, len(apps))
	for _, ap := range apps {
		r, err := domain.NewTimeRange(ap.StartTime, ap.EndTime)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}
