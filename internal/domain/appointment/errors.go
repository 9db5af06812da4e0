package appointment

import "github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"

var (
	// ErrSlotUnavailable covers both out-of-window requests and the generic
	// unavailable case. Out-of-window deliberately gets no availability
	// payload.
	ErrSlotUnavailable = httperr.ErrBusiness("slot_unavailable")

	ErrMaxDurationExceeded = httperr.ErrBusiness("max_duration_exceeded")
	ErrNotFound            = httperr.ErrBusiness("data_not_found")
	ErrTooLateToCancel     = httperr.ErrBusiness("do_not_cancelled")
)

// ConflictError reports an overlap with an existing booking, together with
// everything the caller needs to pick another time.
type ConflictError struct {
	Date           string `json:"date"`
	BookedSlots    []Slot `json:"booked_slots_all"`
	AvailableSlots []Slot `json:"available_slots"`
}

func (e *ConflictError) Error() string {
	return "slot_unavailable"
}
