package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
)

var ErrInvalidRange = httperr.ErrBusiness("invalid_range")

// MinuteOfDay is a time of day in minutes since midnight.
type MinuteOfDay int

func ParseMinuteOfDay(hm string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// TimeRange is a half-open interval [Start, End) over times of day.
type TimeRange struct {
	Start MinuteOfDay
	End   MinuteOfDay
}

func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseMinuteOfDay(start)
	if err != nil {
		return TimeRange{}, ErrInvalidRange
	}

	e, err := ParseMinuteOfDay(end)
	if err != nil {
		return TimeRange{}, ErrInvalidRange
	}

	if s >= e {
		return TimeRange{}, ErrInvalidRange
	}

	return TimeRange{Start: s, End: e}, nil
}

// Overlaps reports whether the two half-open intervals intersect. Ranges that
// only touch at an endpoint do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r TimeRange) DurationMinutes() int {
	return int(r.End - r.Start)
}
