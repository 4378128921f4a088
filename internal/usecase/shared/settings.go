package shared

import (
	"fmt"
	"sync"

	"timeslot-api/internal/pkg/config"
)

// ScheduleSnapshot is an immutable view of the current schedule bounds.
type ScheduleSnapshot struct {
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
	Palette             []string
}

// RuntimeSettings holds the admin-adjustable schedule bounds. Seeded from
// config, shared across requests, not persisted: a restart returns to the
// configured defaults, matching the original behavior of per-client settings.
type RuntimeSettings struct {
	mu   sync.RWMutex
	snap ScheduleSnapshot
}

func NewRuntimeSettings(cfg config.ScheduleConfig) *RuntimeSettings {
	return &RuntimeSettings{
		snap: ScheduleSnapshot{
			StartHour:           cfg.StartHour,
			EndHour:             cfg.EndHour,
			SlotDurationMinutes: cfg.SlotDurationMinutes,
			Palette:             cfg.OwnerColorPalette,
		},
	}
}

func (s *RuntimeSettings) Current() ScheduleSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// UpdateHours changes the bookable hour range. Existing bookings outside the
// new range are kept; statistics report them as negative availability.
func (s *RuntimeSettings) UpdateHours(startHour, endHour int) (ScheduleSnapshot, error) {
	if startHour < 0 || endHour > 24 {
		return ScheduleSnapshot{}, fmt.Errorf("hours must be between 0 and 24: start=%d end=%d", startHour, endHour)
	}
	if startHour >= endHour {
		return ScheduleSnapshot{}, fmt.Errorf("start hour must be before end hour: start=%d end=%d", startHour, endHour)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.StartHour = startHour
	s.snap.EndHour = endHour
	return s.snap, nil
}
