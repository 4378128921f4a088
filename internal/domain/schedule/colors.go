package schedule

import "timeslot-api/internal/domain/booking"

// Palette is the ordered set of owner display colors.
type Palette []string

// Assign maps each distinct owner to a palette color in first-seen order,
// cycling by (distinct owners so far) mod len(palette). Deterministic for a
// deterministic input order; callers wanting stability across refreshes
// should sort by slot id first. The map is view state, rebuilt per pass,
// never persisted.
func (p Palette) Assign(records []*booking.Booking) map[string]string {
	colors := make(map[string]string)
	if len(p) == 0 {
		return colors
	}
	for _, r := range records {
		if _, seen := colors[r.OwnerName()]; seen {
			continue
		}
		colors[r.OwnerName()] = p[len(colors)%len(p)]
	}
	return colors
}
