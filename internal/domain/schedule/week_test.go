//go:build unit

package schedule_test

import (
	"fmt"
	"testing"
	"time"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, dateISO, owner string, hour, minute int) *booking.Booking {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", dateISO, time.UTC)
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		fmt.Sprintf("%s_%d_%d", dateISO, hour, minute),
		date, int(date.Weekday()), hour, minute, owner, "", now, now,
	)
}

func TestContaining(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
	}{
		{name: "sunday maps to itself", date: "2025-06-01", wantStart: "2025-06-01"},
		{name: "monday maps back to sunday", date: "2025-06-02", wantStart: "2025-06-01"},
		{name: "saturday maps back to sunday", date: "2025-06-07", wantStart: "2025-06-01"},
		{name: "next sunday starts a new week", date: "2025-06-08", wantStart: "2025-06-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.ParseInLocation("2006-01-02", tt.date, time.UTC)
			require.NoError(t, err)
			w := schedule.Containing(date)
			assert.Equal(t, tt.wantStart, w.Start().Format("2006-01-02"))
		})
	}
}

func TestContainingIgnoresTimeOfDay(t *testing.T) {
	lateMonday := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)
	w := schedule.Containing(lateMonday)
	assert.Equal(t, "2025-06-01", w.Start().Format("2006-01-02"))
}

func TestShift(t *testing.T) {
	w := schedule.Containing(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-06-08", w.Shift(1).Start().Format("2006-01-02"))
	assert.Equal(t, "2025-05-25", w.Shift(-1).Start().Format("2006-01-02"))
	assert.Equal(t, w.Start(), w.Shift(0).Start())
	assert.Equal(t, w.Start(), w.Shift(3).Shift(-3).Start())
}

func TestDates(t *testing.T) {
	w := schedule.Containing(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	dates := w.Dates()

	require.Len(t, dates, 7)
	assert.Equal(t, "2025-06-01", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2025-06-07", dates[6].Format("2006-01-02"))
	for _, d := range dates {
		assert.True(t, w.Contains(d))
	}
}

func TestContains(t *testing.T) {
	w := schedule.Containing(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)))
}

func TestFilter(t *testing.T) {
	w := schedule.Containing(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))

	inside1 := record(t, "2025-06-02", "Alice", 10, 0)
	inside2 := record(t, "2025-06-06", "Bob", 14, 30)
	before := record(t, "2025-05-30", "Carol", 10, 0)
	after := record(t, "2025-06-09", "Dave", 10, 0)

	all := []*booking.Booking{before, inside1, after, inside2}
	filtered := w.Filter(all)

	require.Len(t, filtered, 2)
	assert.Same(t, inside1, filtered[0])
	assert.Same(t, inside2, filtered[1])

	// idempotent: filtering its own output changes nothing
	assert.Equal(t, filtered, w.Filter(filtered))
}

func TestFilterEmptyInput(t *testing.T) {
	w := schedule.Containing(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, w.Filter(nil))
}
