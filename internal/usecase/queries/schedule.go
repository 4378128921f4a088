package queries

import (
	"context"
	"sort"
	"time"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/domain/schedule"
	"timeslot-api/internal/pkg/clock"
	"timeslot-api/internal/pkg/errs"
	"timeslot-api/internal/usecase/shared"
)

var ErrQueryFailed = errs.New("schedule query failed")

// BookingReadStore is the read-side slice of the persistence collaborator.
type BookingReadStore interface {
	ScanAll(ctx context.Context) ([]*booking.Booking, error)
}

type BookingView struct {
	SlotID    string
	Date      string
	DayOfWeek int
	Hour      int
	Minute    int
	OwnerName string
	Notes     string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WeekView struct {
	WeekStart string
	Dates     []string
	Bookings  []*BookingView
	Stats     schedule.Stats
	// Matches holds the slot ids satisfying the search query; nil when no
	// query was applied.
	Matches []string
}

type UsageView struct {
	TotalBookings int
	TodayBookings int
	WeekBookings  int
	UniqueOwners  int
}

type ScheduleQueries interface {
	ListAll(ctx context.Context) ([]*BookingView, error)
	Week(ctx context.Context, refDate time.Time, searchQuery string) (*WeekView, error)
	Usage(ctx context.Context) (*UsageView, error)
}

type scheduleQueriesImpl struct {
	store    BookingReadStore
	settings *shared.RuntimeSettings
	clock    clock.Clock
}

func NewScheduleQueries(store BookingReadStore, settings *shared.RuntimeSettings, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{
		store:    store,
		settings: settings,
		clock:    clk,
	}
}

func (q *scheduleQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	records, err := q.store.ScanAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views := make([]*BookingView, len(records))
	for i, rec := range records {
		views[i] = toBookingView(rec, "")
	}
	return views, nil
}

// Week builds the display state for the window containing refDate: filtered
// bookings in chronological order, owner colors assigned in that stable
// order, occupancy statistics, and search matches when a query is present.
func (q *scheduleQueriesImpl) Week(ctx context.Context, refDate time.Time, searchQuery string) (*WeekView, error) {
	records, err := q.store.ScanAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	week := schedule.Containing(refDate)
	visible := week.Filter(records)
	sortChronologically(visible)

	snap := q.settings.Current()
	colors := schedule.Palette(snap.Palette).Assign(visible)

	view := &WeekView{
		WeekStart: week.Start().Format("2006-01-02"),
		Dates:     formatDates(week.Dates()),
		Bookings:  make([]*BookingView, len(visible)),
		Stats:     schedule.Summarize(records, week, snap.StartHour, snap.EndHour, snap.SlotDurationMinutes),
	}
	for i, rec := range visible {
		view.Bookings[i] = toBookingView(rec, colors[rec.OwnerName()])
	}

	// Empty query means no filtering applied; that convention lives here,
	// not in the matcher.
	if searchQuery != "" {
		matched := schedule.MatchOwners(visible, searchQuery)
		view.Matches = make([]string, 0, len(matched))
		for _, rec := range visible {
			if _, ok := matched[rec.SlotID()]; ok {
				view.Matches = append(view.Matches, rec.SlotID())
			}
		}
	}

	return view, nil
}

func (q *scheduleQueriesImpl) Usage(ctx context.Context) (*UsageView, error) {
	records, err := q.store.ScanAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	now := q.clock.Now()
	stats := schedule.SummarizeUsage(records, schedule.Containing(now), now)
	return &UsageView{
		TotalBookings: stats.TotalBookings,
		TodayBookings: stats.TodayBookings,
		WeekBookings:  stats.WeekBookings,
		UniqueOwners:  stats.UniqueOwners,
	}, nil
}

func toBookingView(rec *booking.Booking, color string) *BookingView {
	return &BookingView{
		SlotID:    rec.SlotID(),
		Date:      rec.DateISO(),
		DayOfWeek: rec.DayOfWeek(),
		Hour:      rec.Hour(),
		Minute:    rec.Minute(),
		OwnerName: rec.OwnerName(),
		Notes:     rec.Notes(),
		Color:     color,
		CreatedAt: rec.CreatedAt(),
		UpdatedAt: rec.UpdatedAt(),
	}
}

func sortChronologically(records []*booking.Booking) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date().Equal(records[j].Date()) {
			return records[i].Date().Before(records[j].Date())
		}
		if records[i].Hour() != records[j].Hour() {
			return records[i].Hour() < records[j].Hour()
		}
		return records[i].Minute() < records[j].Minute()
	})
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
