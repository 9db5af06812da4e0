package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy(t *testing.T) WorkingHours {
	t.Helper()
	w, err := NewWorkingHours("09:00", "21:00", 120, 30)
	require.NoError(t, err)
	return w
}

func TestNewWorkingHours(t *testing.T) {
	_, err := NewWorkingHours("21:00", "09:00", 120, 30)
	assert.Error(t, err, "inverted window")

	_, err = NewWorkingHours("09:00", "21:00", 0, 30)
	assert.Error(t, err, "non positive max duration")

	_, err = NewWorkingHours("09:00", "21:00", 120, 0)
	assert.Error(t, err, "non positive slot size")
}

func TestIsWithinWindow(t *testing.T) {
	w := defaultPolicy(t)

	mustRange := func(start, end string) TimeRange {
		r, err := NewTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	assert.True(t, w.IsWithinWindow(mustRange("09:00", "21:00")), "exact window")
	assert.True(t, w.IsWithinWindow(mustRange("13:00", "14:00")))
	assert.False(t, w.IsWithinWindow(mustRange("08:00", "09:30")), "starts before opening")
	assert.False(t, w.IsWithinWindow(mustRange("20:30", "21:30")), "ends after closing")
	assert.False(t, w.IsWithinWindow(mustRange("07:00", "08:00")))
}

func TestExceedsMaxDuration(t *testing.T) {
	w := defaultPolicy(t)

	mustRange := func(start, end string) TimeRange {
		r, err := NewTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	assert.False(t, w.ExceedsMaxDuration(mustRange("10:00", "12:00")), "exactly the maximum is allowed")
	assert.True(t, w.ExceedsMaxDuration(mustRange("10:00", "12:30")))
	assert.False(t, w.ExceedsMaxDuration(mustRange("10:00", "10:30")))
}
