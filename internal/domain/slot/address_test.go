//go:build unit

package slot_test

import (
	"testing"
	"time"

	"timeslot-api/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, start, end, minutes int) slot.Grid {
	t.Helper()
	g, err := slot.NewGrid(start, end, minutes)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name        string
		start, end  int
		slotMinutes int
		wantErr     bool
	}{
		{name: "default schedule", start: 9, end: 23, slotMinutes: 30},
		{name: "full day", start: 0, end: 24, slotMinutes: 60},
		{name: "start equals end", start: 9, end: 9, slotMinutes: 30, wantErr: true},
		{name: "start after end", start: 14, end: 9, slotMinutes: 30, wantErr: true},
		{name: "negative start", start: -1, end: 9, slotMinutes: 30, wantErr: true},
		{name: "end past midnight", start: 9, end: 25, slotMinutes: 30, wantErr: true},
		{name: "duration not dividing the hour", start: 9, end: 23, slotMinutes: 45, wantErr: true},
		{name: "zero duration", start: 9, end: 23, slotMinutes: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := slot.NewGrid(tt.start, tt.end, tt.slotMinutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, g.StartHour())
			assert.Equal(t, tt.end, g.EndHour())
		})
	}
}

func TestGridSlotsPerDay(t *testing.T) {
	assert.Equal(t, 28, mustGrid(t, 9, 23, 30).SlotsPerDay())
	assert.Equal(t, 14, mustGrid(t, 9, 23, 60).SlotsPerDay())
	assert.Equal(t, 96, mustGrid(t, 0, 24, 15).SlotsPerDay())
}

func TestNewAddress(t *testing.T) {
	grid := mustGrid(t, 9, 23, 30)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		hour, minute int
		wantErr      bool
	}{
		{name: "first slot of the day", hour: 9, minute: 0},
		{name: "last slot of the day", hour: 22, minute: 30},
		{name: "midday on the half hour", hour: 14, minute: 30},
		{name: "hour before opening", hour: 8, minute: 30, wantErr: true},
		{name: "hour at closing", hour: 23, minute: 0, wantErr: true},
		{name: "minute off the grid", hour: 10, minute: 15, wantErr: true},
		{name: "negative minute", hour: 10, minute: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := slot.NewAddress(date, tt.hour, tt.minute, grid)
			if tt.wantErr {
				assert.ErrorIs(t, err, slot.ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, addr.Hour())
			assert.Equal(t, tt.minute, addr.Minute())
		})
	}
}

func TestNewAddressNormalizesDate(t *testing.T) {
	grid := mustGrid(t, 9, 23, 30)

	morning := time.Date(2025, 6, 2, 8, 45, 12, 0, time.UTC)
	evening := time.Date(2025, 6, 2, 21, 3, 0, 0, time.UTC)

	a, err := slot.NewAddress(morning, 10, 0, grid)
	require.NoError(t, err)
	b, err := slot.NewAddress(evening, 10, 0, grid)
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), a.Date())
}

func TestAddressID(t *testing.T) {
	grid := mustGrid(t, 9, 23, 30)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	addr, err := slot.NewAddress(date, 9, 0, grid)
	require.NoError(t, err)
	// hour and minute stay unpadded in the canonical form
	assert.Equal(t, "2025-06-02_9_0", addr.ID())

	addr, err = slot.NewAddress(date, 14, 30, grid)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02_14_30", addr.ID())
}

func TestDecodeRoundTrip(t *testing.T) {
	grid := mustGrid(t, 9, 23, 30)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	for hour := 9; hour < 23; hour++ {
		for _, minute := range []int{0, 30} {
			addr, err := slot.NewAddress(date, hour, minute, grid)
			require.NoError(t, err)

			decoded, err := slot.Decode(addr.ID())
			require.NoError(t, err)
			assert.Equal(t, addr.ID(), decoded.ID())
			assert.Equal(t, addr.Hour(), decoded.Hour())
			assert.Equal(t, addr.Minute(), decoded.Minute())
			assert.True(t, addr.Date().Equal(decoded.Date()))
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty string", id: ""},
		{name: "missing parts", id: "2025-06-02_10"},
		{name: "too many parts", id: "2025-06-02_10_30_extra"},
		{name: "bad date", id: "2025-13-40_10_30"},
		{name: "non-numeric hour", id: "2025-06-02_ten_30"},
		{name: "hour out of range", id: "2025-06-02_24_0"},
		{name: "minute out of range", id: "2025-06-02_10_60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := slot.Decode(tt.id)
			assert.ErrorIs(t, err, slot.ErrMalformedSlotID)
		})
	}
}

func TestDecodeAcceptsOffGridKeys(t *testing.T) {
	// A stored key no longer fitting the grid still parses; stale bookings
	// must remain addressable for deletion.
	decoded, err := slot.Decode("2025-06-02_7_0")
	require.NoError(t, err)
	assert.Equal(t, 7, decoded.Hour())
}

func TestDayOfWeek(t *testing.T) {
	grid := mustGrid(t, 9, 23, 30)

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	a, err := slot.NewAddress(sunday, 10, 0, grid)
	require.NoError(t, err)
	assert.Equal(t, 0, a.DayOfWeek())

	b, err := slot.NewAddress(saturday, 10, 0, grid)
	require.NoError(t, err)
	assert.Equal(t, 6, b.DayOfWeek())
}
