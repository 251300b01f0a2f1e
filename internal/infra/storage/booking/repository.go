package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"barber_id",
	"service_id",
	"start_time",
	"duration_minutes",
	"status",
	"rejection_reason",
	"no_show_note",
	"cancellation_reason",
	"status_changed_at",
	"created_at",
	"updated_at",
}

// Repository stores bookings in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID loads one booking
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByIDs loads every booking of ids that exists, ordered by start time.
// Missing ids are silently skipped.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Booking, error) {
	if len(ids) == 0 {
		return []*domain.Booking{}, nil
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus writes a status change only if the stored status still equals upd.From.
// Returns ErrStatusConflict when another writer got there first.
func (r *Repository) UpdateStatus(ctx context.Context, upd domain.StatusUpdate) error {
	builder := psqlbuilder.Update("bookings").
		Set("status", upd.To).
		Set("status_changed_at", upd.ChangedAt).
		Set("updated_at", squirrel.Expr("NOW()"))

	if column := annotationColumn(upd.To); column != "" && upd.Note != nil {
		builder = builder.Set(column, *upd.Note)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": upd.BookingID, "status": upd.From}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// AssignBarber sets the barber of an open, unassigned booking.
// Returns ErrAlreadyAssigned when the booking has a barber or is closed.
func (r *Repository) AssignBarber(ctx context.Context, id string, barberID string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("barber_id", barberID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "barber_id": nil, "status": domain.ActiveStatuses}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignBarber - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AssignBarber - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AssignBarber - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyAssigned
	}

	return nil
}

// annotationColumn maps a target status to the column holding its note
func annotationColumn(status domain.BookingStatus) string {
	switch status {
	case domain.StatusRejected:
		return "rejection_reason"
	case domain.StatusNoShow:
		return "no_show_note"
	case domain.StatusCancelled:
		return "cancellation_reason"
	default:
		return ""
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		barberID             sql.NullString
		rejectionReason      sql.NullString
		noShowNote           sql.NullString
		cancellationReason   sql.NullString
		statusChangedAt      sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&barberID,
		&booking.ServiceID,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Status,
		&rejectionReason,
		&noShowNote,
		&cancellationReason,
		&statusChangedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BarberID = nullString(barberID)
	booking.RejectionReason = nullString(rejectionReason)
	booking.NoShowNote = nullString(noShowNote)
	booking.CancellationReason = nullString(cancellationReason)
	if statusChangedAt.Valid {
		t := statusChangedAt.Time
		booking.StatusChangedAt = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings scans every row of a booking query
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
