//go:build unit

package booking_test

import (
	"testing"
	"time"

	"timeslot-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	owned := booking.ReconstructBooking(
		"2025-06-02_10_30",
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		1, 10, 30, "Alice", "", now, now,
	)

	tests := []struct {
		name     string
		actor    booking.Actor
		existing *booking.Booking
		want     bool
	}{
		{
			name:     "named actor books an empty slot",
			actor:    booking.Actor{DisplayName: "Alice"},
			existing: nil,
			want:     true,
		},
		{
			name:     "anonymous actor cannot book",
			actor:    booking.Actor{},
			existing: nil,
			want:     false,
		},
		{
			name:     "owner modifies own booking",
			actor:    booking.Actor{DisplayName: "Alice"},
			existing: owned,
			want:     true,
		},
		{
			name:     "other actor cannot modify",
			actor:    booking.Actor{DisplayName: "Bob"},
			existing: owned,
			want:     false,
		},
		{
			name:     "name comparison is exact",
			actor:    booking.Actor{DisplayName: "alice"},
			existing: owned,
			want:     false,
		},
		{
			name:     "admin modifies any booking",
			actor:    booking.Actor{DisplayName: "Root", IsAdmin: true},
			existing: owned,
			want:     true,
		},
		{
			name:     "admin without a name still mutates",
			actor:    booking.Actor{IsAdmin: true},
			existing: owned,
			want:     true,
		},
		{
			name:     "anonymous non-admin cannot modify",
			actor:    booking.Actor{},
			existing: owned,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.CanMutate(tt.actor, tt.existing))
		})
	}
}

func TestActorIsAuthenticated(t *testing.T) {
	assert.True(t, booking.Actor{DisplayName: "Alice"}.IsAuthenticated())
	assert.True(t, booking.Actor{IsAdmin: true}.IsAuthenticated())
	assert.False(t, booking.Actor{}.IsAuthenticated())
}
