package booking

// Actor is the per-request identity: a self-declared display name plus a
// transient admin capability granted by the surrounding application. It is
// never persisted and never embedded in a Booking.
type Actor struct {
	DisplayName string
	IsAdmin     bool
}

func (a Actor) IsAuthenticated() bool {
	return a.DisplayName != "" || a.IsAdmin
}
