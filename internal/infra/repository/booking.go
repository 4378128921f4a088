package repository

import (
	"context"
	"time"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; *pgxpool.Pool and
// pgx.Tx both satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepository implements the conditional key-value contract over the
// bookings table. The version column is the conditional-write token: every
// successful write advances it, and an expected-version mismatch is a
// CONFLICT, never a silent overwrite.
type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `slot_id, date, day_of_week, hour, minute, owner_name, notes, version, created_at, updated_at`

func (r *BookingRepository) ScanAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY slot_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	defer rows.Close()

	var records []*booking.Booking
	for rows.Next() {
		rec, _, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return records, nil
}

// Find returns the record and its current version token for the slot.
func (r *BookingRepository) Find(ctx context.Context, slotID string) (*booking.Booking, int64, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE slot_id = $1`, slotID)
	rec, version, err := scanBooking(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, 0, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, 0, infra.WrapRepoErr("failed to find booking", err)
	}
	return rec, version, nil
}

// InsertIfAbsent is the expected-absent conditional put: it commits only if
// no record occupies the slot, otherwise CONFLICT.
func (r *BookingRepository) InsertIfAbsent(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO bookings (slot_id, date, day_of_week, hour, minute, owner_name, notes, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
		ON CONFLICT (slot_id) DO NOTHING
	`, b.SlotID(), b.Date(), b.DayOfWeek(), b.Hour(), b.Minute(), b.OwnerName(), b.Notes(), b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot already occupied", nil, infra.KindConflict)
	}
	return nil
}

// UpdateIfVersion is the expected-present conditional put: it commits only if
// the stored version still matches what the caller observed.
func (r *BookingRepository) UpdateIfVersion(ctx context.Context, b *booking.Booking, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET owner_name = $2, notes = $3, updated_at = $4, version = version + 1
		WHERE slot_id = $1 AND version = $5
	`, b.SlotID(), b.OwnerName(), b.Notes(), b.UpdatedAt(), expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking changed since read", nil, infra.KindConflict)
	}
	return nil
}

// DeleteIfVersion deletes only if the record observed by the caller is still
// current. Distinguishes a vanished record (NOT_FOUND) from a replaced one
// (CONFLICT) so callers can surface the right outcome.
func (r *BookingRepository) DeleteIfVersion(ctx context.Context, slotID string, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE slot_id = $1 AND version = $2`, slotID, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE slot_id = $1)`, slotID).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to recheck booking", err)
	}
	if exists {
		return infra.WrapRepoErr("booking changed since read", nil, infra.KindConflict)
	}
	return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

// ForceDelete removes a record regardless of version. Used by the admin
// bulk clear, which is explicitly permitted to race.
func (r *BookingRepository) ForceDelete(ctx context.Context, slotID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE slot_id = $1`, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, int64, error) {
	var (
		slotID, ownerName, notes string
		date                     time.Time
		dayOfWeek, hour, minute  int
		version                  int64
		createdAt, updatedAt     time.Time
	)
	err := row.Scan(&slotID, &date, &dayOfWeek, &hour, &minute, &ownerName, &notes, &version, &createdAt, &updatedAt)
	if err != nil {
		return nil, 0, err
	}
	rec := booking.ReconstructBooking(slotID, date.UTC(), dayOfWeek, hour, minute, ownerName, notes, createdAt.UTC(), updatedAt.UTC())
	return rec, version, nil
}
