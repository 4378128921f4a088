package schedule

import (
	"time"

	"timeslot-api/internal/domain/booking"
)

// Week is a Sunday-aligned 7-day window.
type Week struct {
	start time.Time
}

// Containing normalizes to the Sunday on or before date.
func Containing(date time.Time) Week {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Week{start: midnight.AddDate(0, 0, -int(midnight.Weekday()))}
}

func (w Week) Shift(deltaWeeks int) Week {
	return Week{start: w.start.AddDate(0, 0, 7*deltaWeeks)}
}

func (w Week) Start() time.Time { return w.start }

// Dates returns the window's seven dates, Sunday through Saturday.
func (w Week) Dates() []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = w.start.AddDate(0, 0, i)
	}
	return dates
}

func (w Week) Contains(date time.Time) bool {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !midnight.Before(w.start) && midnight.Before(w.start.AddDate(0, 0, 7))
}

// Filter keeps the bookings whose date falls inside the window. Pure and
// order-preserving, so re-applying it to its own output is a no-op.
func (w Week) Filter(records []*booking.Booking) []*booking.Booking {
	filtered := make([]*booking.Booking, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Date()) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
