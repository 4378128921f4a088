package schedule

import (
	"time"

	"timeslot-api/internal/domain/booking"
)

type Stats struct {
	TotalSlots     int
	BookedSlots    int
	AvailableSlots int
}

// Summarize reports occupancy of the window under the given schedule bounds.
// AvailableSlots is not clamped: a negative value means bookings exist
// outside the current hour range (an admin shrank it) and need attention.
func Summarize(records []*booking.Booking, w Week, startHour, endHour, slotMinutes int) Stats {
	totalSlots := 7 * ((endHour - startHour) * 60 / slotMinutes)
	booked := len(w.Filter(records))
	return Stats{
		TotalSlots:     totalSlots,
		BookedSlots:    booked,
		AvailableSlots: totalSlots - booked,
	}
}

type UsageStats struct {
	TotalBookings int
	TodayBookings int
	WeekBookings  int
	UniqueOwners  int
}

// SummarizeUsage is the admin dashboard view over the full record set.
func SummarizeUsage(records []*booking.Booking, w Week, today time.Time) UsageStats {
	y, m, d := today.Date()
	todayMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	owners := make(map[string]struct{})
	stats := UsageStats{TotalBookings: len(records)}
	for _, r := range records {
		owners[r.OwnerName()] = struct{}{}
		if r.Date().Equal(todayMidnight) {
			stats.TodayBookings++
		}
		if w.Contains(r.Date()) {
			stats.WeekBookings++
		}
	}
	stats.UniqueOwners = len(owners)
	return stats
}
