package appointment

import (
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var (
	ErrAlreadyCancelled = httperr.ErrBusiness("appointment_already_cancelled")
	ErrAlreadyCompleted = httperr.ErrBusiness("already_mark_as_completed")
	ErrInvalidStatus    = httperr.ErrBusiness("invalid_status")
)

func InitialStatus() Status {
	return StatusBooked
}

// ParseResolveStatus accepts the statuses a professional may apply.
func ParseResolveStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ===============================
// Domain Actions
// ===============================

// Cancel applies the patient-side cancellation. Cancelling twice is rejected,
// never silently repeated.
func Cancel(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) == StatusCancelled {
		return ErrAlreadyCancelled
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Resolve applies the professional-side terminal status. The completed guard
// runs before anything else, whatever the requested target.
func Resolve(ap *models.Appointment, target Status, now time.Time) error {
	if Status(ap.Status) == StatusCompleted {
		return ErrAlreadyCompleted
	}

	switch target {
	case StatusCompleted:
		ap.Status = string(StatusCompleted)
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.Status = string(StatusCancelled)
		ap.CancelledAt = &now
	default:
		return ErrInvalidStatus
	}

	return nil
}
