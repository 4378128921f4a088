package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrMalformedSlotID = errors.New("malformed slot id")
)

const DateLayout = "2006-01-02"

// Grid is the bookable portion of a day: hours in [startHour, endHour) cut
// into slotMinutes pieces.
type Grid struct {
	startHour   int
	endHour     int
	slotMinutes int
}

func NewGrid(startHour, endHour, slotMinutes int) (Grid, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return Grid{}, fmt.Errorf("grid hours out of range: start=%d end=%d", startHour, endHour)
	}
	if slotMinutes <= 0 || 60%slotMinutes != 0 {
		return Grid{}, fmt.Errorf("slot duration must divide an hour evenly: %d", slotMinutes)
	}
	return Grid{startHour: startHour, endHour: endHour, slotMinutes: slotMinutes}, nil
}

func (g Grid) StartHour() int   { return g.startHour }
func (g Grid) EndHour() int     { return g.endHour }
func (g Grid) SlotMinutes() int { return g.slotMinutes }

func (g Grid) SlotsPerDay() int {
	return (g.endHour - g.startHour) * 60 / g.slotMinutes
}

func (g Grid) contains(hour, minute int) bool {
	if hour < g.startHour || hour >= g.endHour {
		return false
	}
	return minute >= 0 && minute < 60 && minute%g.slotMinutes == 0
}

// Address identifies one slot: a calendar date plus an aligned (hour, minute).
// Its canonical string form "<ISO-date>_<hour>_<minute>" is the storage key.
type Address struct {
	date   time.Time
	hour   int
	minute int
}

// NewAddress validates against the grid. The date is normalized to midnight
// UTC so two addresses for the same day compare equal.
func NewAddress(date time.Time, hour, minute int, g Grid) (Address, error) {
	if !g.contains(hour, minute) {
		return Address{}, fmt.Errorf("%w: %02d:%02d outside grid [%d,%d)/%dmin",
			ErrInvalidSlot, hour, minute, g.startHour, g.endHour, g.slotMinutes)
	}
	return Address{date: normalize(date), hour: hour, minute: minute}, nil
}

// Decode parses a canonical slot id. Grid alignment is not re-checked here:
// a stored key that parses but no longer fits the grid is a stale booking,
// not a malformed id.
func Decode(id string) (Address, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		return Address{}, fmt.Errorf("%w: %q", ErrMalformedSlotID, id)
	}
	date, err := time.ParseInLocation(DateLayout, parts[0], time.UTC)
	if err != nil {
		return Address{}, fmt.Errorf("%w: bad date in %q", ErrMalformedSlotID, id)
	}
	hour, err := strconv.Atoi(parts[1])
	if err != nil || hour < 0 || hour > 23 {
		return Address{}, fmt.Errorf("%w: bad hour in %q", ErrMalformedSlotID, id)
	}
	minute, err := strconv.Atoi(parts[2])
	if err != nil || minute < 0 || minute > 59 {
		return Address{}, fmt.Errorf("%w: bad minute in %q", ErrMalformedSlotID, id)
	}
	return Address{date: date, hour: hour, minute: minute}, nil
}

// ID is the canonical encoding. Hour and minute are written unpadded, exactly
// as the key format of the backing table expects.
func (a Address) ID() string {
	return fmt.Sprintf("%s_%d_%d", a.date.Format(DateLayout), a.hour, a.minute)
}

func (a Address) Date() time.Time { return a.date }
func (a Address) Hour() int       { return a.hour }
func (a Address) Minute() int     { return a.minute }

func (a Address) DateISO() string {
	return a.date.Format(DateLayout)
}

// DayOfWeek is 0=Sunday..6=Saturday.
func (a Address) DayOfWeek() int {
	return int(a.date.Weekday())
}

func normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
