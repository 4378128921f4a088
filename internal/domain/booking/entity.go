package booking

import (
	"time"

	"timeslot-api/internal/domain/slot"
)

// Booking is the sole persisted entity. One booking occupies exactly one
// slot; the slot id is the primary key, so occupancy is uniqueness.
type Booking struct {
	slotID    string
	date      time.Time
	dayOfWeek int
	hour      int
	minute    int
	ownerName string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates the record for a previously empty slot. The owner is
// always the creating actor, never a caller-supplied name.
func NewBooking(addr slot.Address, actor Actor, notes string, now time.Time) *Booking {
	return &Booking{
		slotID:    addr.ID(),
		date:      addr.Date(),
		dayOfWeek: addr.DayOfWeek(),
		hour:      addr.Hour(),
		minute:    addr.Minute(),
		ownerName: actor.DisplayName,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	slotID string,
	date time.Time,
	dayOfWeek, hour, minute int,
	ownerName, notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		slotID:    slotID,
		date:      date,
		dayOfWeek: dayOfWeek,
		hour:      hour,
		minute:    minute,
		ownerName: ownerName,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Updated returns the replacement record for an occupied slot. createdAt is
// preserved; ownerName changes only when an admin supplies a non-empty
// override.
func (b *Booking) Updated(notes string, ownerOverride string, actor Actor, now time.Time) *Booking {
	owner := b.ownerName
	if actor.IsAdmin && ownerOverride != "" {
		owner = ownerOverride
	}
	return &Booking{
		slotID:    b.slotID,
		date:      b.date,
		dayOfWeek: b.dayOfWeek,
		hour:      b.hour,
		minute:    b.minute,
		ownerName: owner,
		notes:     notes,
		createdAt: b.createdAt,
		updatedAt: now,
	}
}

func (b *Booking) SlotID() string       { return b.slotID }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) DayOfWeek() int       { return b.dayOfWeek }
func (b *Booking) Hour() int            { return b.hour }
func (b *Booking) Minute() int          { return b.minute }
func (b *Booking) OwnerName() string    { return b.ownerName }
func (b *Booking) Notes() string        { return b.notes }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) DateISO() string {
	return b.date.Format(slot.DateLayout)
}
