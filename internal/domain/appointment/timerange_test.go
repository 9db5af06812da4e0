package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinuteOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("13:30")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(810), m)
	assert.Equal(t, "13:30", m.String())

	m, err = ParseMinuteOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(0), m)

	_, err = ParseMinuteOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseMinuteOfDay("9:00")
	assert.Error(t, err, "hours must be zero padded")
}

func TestNewTimeRange(t *testing.T) {
	r, err := NewTimeRange("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, r.DurationMinutes())

	_, err = NewTimeRange("10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidRange, "empty range rejected")

	_, err = NewTimeRange("14:00", "13:00")
	assert.ErrorIs(t, err, ErrInvalidRange, "inverted range rejected")

	_, err = NewTimeRange("bogus", "10:00")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTimeRangeOverlaps(t *testing.T) {
	mustRange := func(start, end string) TimeRange {
		r, err := NewTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"identical", mustRange("13:00", "14:00"), mustRange("13:00", "14:00"), true},
		{"partial", mustRange("13:30", "14:30"), mustRange("13:00", "14:00"), true},
		{"contained", mustRange("13:15", "13:45"), mustRange("13:00", "14:00"), true},
		{"touching endpoints", mustRange("13:00", "14:00"), mustRange("14:00", "15:00"), false},
		{"disjoint", mustRange("09:00", "10:00"), mustRange("11:00", "12:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}
