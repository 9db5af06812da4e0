package appointment

import "fmt"

// WorkingHours is the clinic-wide booking policy: a fixed daily window, a
// maximum appointment length and the slot size used for availability. Built
// once at startup and passed to everything that needs it.
type WorkingHours struct {
	WindowStart MinuteOfDay
	WindowEnd   MinuteOfDay

	MaxDurationMinutes     int
	SlotGranularityMinutes int
}

func NewWorkingHours(start, end string, maxDurationMinutes, slotMinutes int) (WorkingHours, error) {
	s, err := ParseMinuteOfDay(start)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("invalid window start %q: %w", start, err)
	}

	e, err := ParseMinuteOfDay(end)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("invalid window end %q: %w", end, err)
	}

	if s >= e {
		return WorkingHours{}, fmt.Errorf("window start %s not before window end %s", s, e)
	}

	if maxDurationMinutes <= 0 || slotMinutes <= 0 {
		return WorkingHours{}, fmt.Errorf("durations must be positive")
	}

	return WorkingHours{
		WindowStart:            s,
		WindowEnd:              e,
		MaxDurationMinutes:     maxDurationMinutes,
		SlotGranularityMinutes: slotMinutes,
	}, nil
}

func (w WorkingHours) IsWithinWindow(r TimeRange) bool {
	return r.Start >= w.WindowStart && r.End <= w.WindowEnd
}

func (w WorkingHours) ExceedsMaxDuration(r TimeRange) bool {
	return r.DurationMinutes() > w.MaxDurationMinutes
}
