package booking

// CanMutate decides whether actor may write the slot currently holding
// existing (nil for an empty slot).
//
// Create: any actor with a display name. Modify/delete: admin or owner.
// Handlers may pre-check this for UX, but the command path re-enforces it;
// the store is the boundary, the UI is untrusted.
func CanMutate(actor Actor, existing *Booking) bool {
	if existing == nil {
		return actor.DisplayName != ""
	}
	if actor.IsAdmin {
		return true
	}
	return actor.DisplayName != "" && existing.OwnerName() == actor.DisplayName
}
