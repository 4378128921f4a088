package schedule

import (
	"strings"

	"timeslot-api/internal/domain/booking"
)

// MatchOwners returns the slot ids whose owner name contains query,
// case-insensitive. This is a pure substring predicate; "empty query means no
// filtering" is the caller's convention, not encoded here.
func MatchOwners(records []*booking.Booking, query string) map[string]struct{} {
	needle := strings.ToLower(query)
	matched := make(map[string]struct{})
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.OwnerName()), needle) {
			matched[r.SlotID()] = struct{}{}
		}
	}
	return matched
}
