package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

func newCancelFixture(t *testing.T) (*Cancel, *fakeRepository, *fakeCache, uint) {
	t.Helper()

	repo := newFakeRepository()
	cache := newFakeCache()

	id := repo.addAppointment(models.Appointment{
		UserID:                   42,
		HealthcareProfessionalID: 7,
		Date:                     mustDate(t, "2026-09-10", time.UTC),
		StartTime:                "13:00",
		EndTime:                  "14:00",
		Status:                   "booked",
	})

	uc := NewCancel(repo, cache, nil, time.UTC, 24)
	return uc, repo, cache, id
}

func TestCancelSuccessOutsideCutoff(t *testing.T) {
	uc, repo, cache, id := newCancelFixture(t)

	// 25 hours before the 13:00 start.
	uc.WithClock(func() time.Time {
		return time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)
	})

	ap, err := uc.Execute(context.Background(), 42, id)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Contains(t, repo.updated, id)
	assert.Contains(t, cache.invalidated, "2026-09-10")
}

func TestCancelInsideCutoffRejected(t *testing.T) {
	uc, repo, _, id := newCancelFixture(t)

	// 23 hours before the start.
	uc.WithClock(func() time.Time {
		return time.Date(2026, 9, 9, 14, 0, 0, 0, time.UTC)
	})

	_, err := uc.Execute(context.Background(), 42, id)
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)
	assert.Empty(t, repo.updated)
}

func TestCancelExactlyAtCutoffRejected(t *testing.T) {
	uc, _, _, id := newCancelFixture(t)

	uc.WithClock(func() time.Time {
		return time.Date(2026, 9, 9, 13, 0, 0, 0, time.UTC)
	})

	_, err := uc.Execute(context.Background(), 42, id)
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	uc, repo, _, id := newCancelFixture(t)
	repo.appointments[0].Status = "cancelled"

	uc.WithClock(func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	})

	_, err := uc.Execute(context.Background(), 42, id)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestCancelCompletedReportsNotFound(t *testing.T) {
	uc, repo, _, id := newCancelFixture(t)
	repo.appointments[0].Status = "completed"

	_, err := uc.Execute(context.Background(), 42, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelOtherPatientsAppointment(t *testing.T) {
	uc, _, _, id := newCancelFixture(t)

	_, err := uc.Execute(context.Background(), 99, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
