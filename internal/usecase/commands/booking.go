package commands

import (
	"context"
	"time"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/domain/slot"
	"timeslot-api/internal/infra"
	"timeslot-api/internal/pkg/clock"
	"timeslot-api/internal/pkg/errs"
	"timeslot-api/internal/usecase/shared"
)

var (
	ErrInvalidSlot      = errs.New("invalid slot")
	ErrMalformedSlotID  = errs.New("malformed slot id")
	ErrPermissionDenied = errs.New("permission denied")
	ErrConflict         = errs.New("concurrent modification conflict")
	ErrNotFound         = errs.New("booking not found")
	ErrInvalidSettings  = errs.New("invalid schedule settings")
	ErrStoreFailure     = errs.New("persistence operation failed")
)

// BookingRepository is the persistence collaborator contract: a scan plus
// conditional writes keyed by slot id. The version token observed at read
// time is the condition; a miss surfaces as KindConflict.
type BookingRepository interface {
	Find(ctx context.Context, slotID string) (*booking.Booking, int64, error)
	ScanAll(ctx context.Context) ([]*booking.Booking, error)
	InsertIfAbsent(ctx context.Context, b *booking.Booking) error
	UpdateIfVersion(ctx context.Context, b *booking.Booking, expectedVersion int64) error
	DeleteIfVersion(ctx context.Context, slotID string, expectedVersion int64) error
	ForceDelete(ctx context.Context, slotID string) error
}

type UpsertBookingParams struct {
	Date   time.Time
	Hour   int
	Minute int
	Notes  string
	// OwnerOverride renames the owner on an existing record. Honored for
	// admins only; creation always records the acting user.
	OwnerOverride string
}

type UpsertResult struct {
	Record  *booking.Booking
	Created bool
}

type ClearFailure struct {
	SlotID string
	Reason string
}

type ClearAllResult struct {
	Deleted  int
	Failures []ClearFailure
}

type BookingCommands interface {
	Upsert(ctx context.Context, actor booking.Actor, params UpsertBookingParams) (*UpsertResult, error)
	Delete(ctx context.Context, actor booking.Actor, slotID string) error
	ClearAll(ctx context.Context, actor booking.Actor) (*ClearAllResult, error)
	UpdateScheduleHours(ctx context.Context, actor booking.Actor, startHour, endHour int) (shared.ScheduleSnapshot, error)
}

type bookingCommandsImpl struct {
	repo     BookingRepository
	settings *shared.RuntimeSettings
	clock    clock.Clock
}

func NewBookingCommands(repo BookingRepository, settings *shared.RuntimeSettings, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		repo:     repo,
		settings: settings,
		clock:    clk,
	}
}

// Upsert implements the read-then-conditional-write discipline: the record
// (or its absence) observed in step 2 is the condition for the write in step
// 5, so two actors racing for one slot cannot both win silently.
func (u *bookingCommandsImpl) Upsert(ctx context.Context, actor booking.Actor, params UpsertBookingParams) (*UpsertResult, error) {
	snap := u.settings.Current()
	grid, err := slot.NewGrid(snap.StartHour, snap.EndHour, snap.SlotDurationMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSettings)
	}

	addr, err := slot.NewAddress(params.Date, params.Hour, params.Minute, grid)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	existing, version, err := u.repo.Find(ctx, addr.ID())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		existing = nil
	}

	if !booking.CanMutate(actor, existing) {
		return nil, ErrPermissionDenied
	}

	now := u.clock.Now()
	var record *booking.Booking
	if existing == nil {
		record = booking.NewBooking(addr, actor, params.Notes, now)
		err = u.repo.InsertIfAbsent(ctx, record)
	} else {
		record = existing.Updated(params.Notes, params.OwnerOverride, actor, now)
		err = u.repo.UpdateIfVersion(ctx, record, version)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrConflict)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &UpsertResult{Record: record, Created: existing == nil}, nil
}

func (u *bookingCommandsImpl) Delete(ctx context.Context, actor booking.Actor, slotID string) error {
	if _, err := slot.Decode(slotID); err != nil {
		return errs.Mark(err, ErrMalformedSlotID)
	}

	existing, version, err := u.repo.Find(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotFound)
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	if !booking.CanMutate(actor, existing) {
		return ErrPermissionDenied
	}

	if err := u.repo.DeleteIfVersion(ctx, slotID, version); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return errs.Mark(err, ErrConflict)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrNotFound)
		default:
			return errs.Mark(err, ErrStoreFailure)
		}
	}
	return nil
}

// ClearAll is admin-only and deliberately non-atomic: each record is deleted
// independently and failures are reported, not fatal.
func (u *bookingCommandsImpl) ClearAll(ctx context.Context, actor booking.Actor) (*ClearAllResult, error) {
	if !actor.IsAdmin {
		return nil, ErrPermissionDenied
	}

	records, err := u.repo.ScanAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	result := &ClearAllResult{}
	for _, rec := range records {
		if err := u.repo.ForceDelete(ctx, rec.SlotID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Already gone; counts as cleared.
				result.Deleted++
				continue
			}
			result.Failures = append(result.Failures, ClearFailure{
				SlotID: rec.SlotID(),
				Reason: err.Error(),
			})
			continue
		}
		result.Deleted++
	}
	return result, nil
}

func (u *bookingCommandsImpl) UpdateScheduleHours(_ context.Context, actor booking.Actor, startHour, endHour int) (shared.ScheduleSnapshot, error) {
	if !actor.IsAdmin {
		return shared.ScheduleSnapshot{}, ErrPermissionDenied
	}
	snap, err := u.settings.UpdateHours(startHour, endHour)
	if err != nil {
		return shared.ScheduleSnapshot{}, errs.Mark(err, ErrInvalidSettings)
	}
	return snap, nil
}
