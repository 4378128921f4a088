//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"timeslot-api/internal/domain/booking"
	reqdto "timeslot-api/internal/handler/dto/request"
	"timeslot-api/internal/usecase/queries"
)

type BookingBuilder struct {
	Date      time.Time
	Hour      int
	Minute    int
	OwnerName string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // a Monday
	return &BookingBuilder{
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Hour:      10,
		Minute:    30,
		OwnerName: "Alice",
		Notes:     "weekly lesson",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(hour, minute int) *BookingBuilder {
	b.Hour = hour
	b.Minute = minute
	return b
}

func (b *BookingBuilder) WithOwner(name string) *BookingBuilder {
	b.OwnerName = name
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

// SlotID is the canonical key the built record will carry.
func (b *BookingBuilder) SlotID() string {
	return fmt.Sprintf("%s_%d_%d", b.Date.Format("2006-01-02"), b.Hour, b.Minute)
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.SlotID(),
		b.Date,
		int(b.Date.Weekday()),
		b.Hour,
		b.Minute,
		b.OwnerName,
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildUpsertRequestDTO() reqdto.UpsertBookingRequest {
	hour := b.Hour
	minute := b.Minute
	return reqdto.UpsertBookingRequest{
		Date:   b.Date.Format("2006-01-02"),
		Hour:   &hour,
		Minute: &minute,
		Notes:  b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		SlotID:    b.SlotID(),
		Date:      b.Date.Format("2006-01-02"),
		DayOfWeek: int(b.Date.Weekday()),
		Hour:      b.Hour,
		Minute:    b.Minute,
		OwnerName: b.OwnerName,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
