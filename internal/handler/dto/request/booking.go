package request

import (
	"time"

	"timeslot-api/internal/usecase/commands"
)

type UpsertBookingRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Hour   *int   `json:"hour" binding:"required,min=0,max=23"`
	Minute *int   `json:"minute" binding:"required,min=0,max=59"`
	Notes  string `json:"notes" binding:"max=500"`
	// OwnerName is honored only when an admin edits an existing booking;
	// everyone else always books under their own name.
	OwnerName string `json:"ownerName" binding:"max=100"`
}

func (r UpsertBookingRequest) ToParams() (commands.UpsertBookingParams, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.UTC)
	if err != nil {
		return commands.UpsertBookingParams{}, err
	}
	return commands.UpsertBookingParams{
		Date:          date,
		Hour:          *r.Hour,
		Minute:        *r.Minute,
		Notes:         r.Notes,
		OwnerOverride: r.OwnerName,
	}, nil
}

type UpdateSettingsRequest struct {
	StartHour *int `json:"startHour" binding:"required,min=0,max=24"`
	EndHour   *int `json:"endHour" binding:"required,min=0,max=24"`
}
