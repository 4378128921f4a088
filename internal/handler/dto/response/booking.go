package response

import (
	"time"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/usecase/commands"
	"timeslot-api/internal/usecase/queries"
)

// BookingResponse is the wire shape of a persisted booking.
type BookingResponse struct {
	SlotID    string    `json:"slotId"`
	Date      string    `json:"date"`
	DayOfWeek int       `json:"dayOfWeek"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	OwnerName string    `json:"ownerName"`
	Notes     string    `json:"notes"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		SlotID:    v.SlotID,
		Date:      v.Date,
		DayOfWeek: v.DayOfWeek,
		Hour:      v.Hour,
		Minute:    v.Minute,
		OwnerName: v.OwnerName,
		Notes:     v.Notes,
		Color:     v.Color,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		SlotID:    b.SlotID(),
		Date:      b.DateISO(),
		DayOfWeek: b.DayOfWeek(),
		Hour:      b.Hour(),
		Minute:    b.Minute(),
		OwnerName: b.OwnerName(),
		Notes:     b.Notes(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

type ClearFailureResponse struct {
	SlotID string `json:"slotId"`
	Reason string `json:"reason"`
}

type ClearAllResponse struct {
	Deleted  int                    `json:"deleted"`
	Failures []ClearFailureResponse `json:"failures,omitempty"`
}

func FromClearAllResult(r *commands.ClearAllResult) *ClearAllResponse {
	resp := &ClearAllResponse{Deleted: r.Deleted}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, ClearFailureResponse{SlotID: f.SlotID, Reason: f.Reason})
	}
	return resp
}
