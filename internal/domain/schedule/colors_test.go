//go:build unit

package schedule_test

import (
	"testing"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestPaletteAssign(t *testing.T) {
	palette := schedule.Palette{"#c0", "#c1"}

	t.Run("first seen order with wraparound", func(t *testing.T) {
		records := []*booking.Booking{
			record(t, "2025-06-02", "Alice", 9, 0),
			record(t, "2025-06-02", "Bob", 9, 30),
			record(t, "2025-06-02", "Alice", 10, 0),
			record(t, "2025-06-02", "Carol", 10, 30),
		}

		colors := palette.Assign(records)
		assert.Equal(t, map[string]string{
			"Alice": "#c0",
			"Bob":   "#c1",
			"Carol": "#c0",
		}, colors)
	})

	t.Run("repeat bookings keep the first color", func(t *testing.T) {
		records := []*booking.Booking{
			record(t, "2025-06-02", "Alice", 9, 0),
			record(t, "2025-06-03", "Alice", 9, 0),
			record(t, "2025-06-04", "Alice", 9, 0),
		}

		colors := palette.Assign(records)
		assert.Equal(t, map[string]string{"Alice": "#c0"}, colors)
	})

	t.Run("empty palette assigns nothing", func(t *testing.T) {
		records := []*booking.Booking{record(t, "2025-06-02", "Alice", 9, 0)}
		assert.Empty(t, schedule.Palette{}.Assign(records))
	})

	t.Run("no records", func(t *testing.T) {
		assert.Empty(t, palette.Assign(nil))
	})
}

func TestMatchOwners(t *testing.T) {
	anna := record(t, "2025-06-02", "Anna", 9, 0)
	joanna := record(t, "2025-06-02", "Joanna", 9, 30)
	ben := record(t, "2025-06-02", "Ben", 10, 0)
	records := []*booking.Booking{anna, joanna, ben}

	t.Run("case-insensitive substring", func(t *testing.T) {
		matched := schedule.MatchOwners(records, "ann")
		assert.Contains(t, matched, anna.SlotID())
		assert.Contains(t, matched, joanna.SlotID())
		assert.NotContains(t, matched, ben.SlotID())
	})

	t.Run("mixed case query", func(t *testing.T) {
		matched := schedule.MatchOwners(records, "ANNA")
		assert.Len(t, matched, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, schedule.MatchOwners(records, "zelda"))
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		// The "no filtering" convention for empty queries belongs to the
		// caller; the predicate itself matches all owners.
		assert.Len(t, schedule.MatchOwners(records, ""), 3)
	})
}
