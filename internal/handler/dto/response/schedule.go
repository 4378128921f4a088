package response

import (
	"timeslot-api/internal/usecase/queries"
	"timeslot-api/internal/usecase/shared"
)

type WeekStatsResponse struct {
	TotalSlots     int `json:"totalSlots"`
	BookedSlots    int `json:"bookedSlots"`
	AvailableSlots int `json:"availableSlots"`
}

type WeekResponse struct {
	WeekStart string             `json:"weekStart"`
	Dates     []string           `json:"dates"`
	Bookings  []*BookingResponse `json:"bookings"`
	Stats     WeekStatsResponse  `json:"stats"`
	Matches   []string           `json:"matches,omitempty"`
}

func FromWeekView(v *queries.WeekView) *WeekResponse {
	bookings := make([]*BookingResponse, len(v.Bookings))
	for i, b := range v.Bookings {
		bookings[i] = FromBookingView(b)
	}
	return &WeekResponse{
		WeekStart: v.WeekStart,
		Dates:     v.Dates,
		Bookings:  bookings,
		Stats: WeekStatsResponse{
			TotalSlots:     v.Stats.TotalSlots,
			BookedSlots:    v.Stats.BookedSlots,
			AvailableSlots: v.Stats.AvailableSlots,
		},
		Matches: v.Matches,
	}
}

type UsageResponse struct {
	TotalBookings int `json:"totalBookings"`
	TodayBookings int `json:"todayBookings"`
	WeekBookings  int `json:"weekBookings"`
	UniqueOwners  int `json:"uniqueOwners"`
}

func FromUsageView(v *queries.UsageView) *UsageResponse {
	return &UsageResponse{
		TotalBookings: v.TotalBookings,
		TodayBookings: v.TodayBookings,
		WeekBookings:  v.WeekBookings,
		UniqueOwners:  v.UniqueOwners,
	}
}

type SettingsResponse struct {
	StartHour           int `json:"startHour"`
	EndHour             int `json:"endHour"`
	SlotDurationMinutes int `json:"slotDurationMinutes"`
}

func FromScheduleSnapshot(s shared.ScheduleSnapshot) *SettingsResponse {
	return &SettingsResponse{
		StartHour:           s.StartHour,
		EndHour:             s.EndHour,
		SlotDurationMinutes: s.SlotDurationMinutes,
	}
}
