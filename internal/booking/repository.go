package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayforge/hotel-booking-backend/internal/db"
)

// TxRepository exposes the booking operations available inside a room-locked
// transaction.
type TxRepository interface {
	// ListActiveForRoom returns the bookings on the room whose status still
	// occupies it (booked or checked-in). excludeID is used during updates to
	// ignore the booking being moved.
	ListActiveForRoom(ctx context.Context, roomID string, excludeID string) ([]*Booking, error)
	Insert(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	ListActiveForRoom(ctx context.Context, roomID string, excludeID string) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// WithRoomLock runs fn inside a transaction holding an advisory lock on
	// the room, serializing the conflict-check-then-write sequence against
	// concurrent booking attempts for the same room.
	WithRoomLock(ctx context.Context, roomID string, fn func(tx TxRepository) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same data
// access code runs inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool
	q    querier
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, q: pool}
}

func (r *pgxRepository) WithRoomLock(ctx context.Context, roomID string, fn func(tx TxRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction failed: %w", err)
	}
	// Rollback is a no-op after a successful commit; it guarantees the lock
	// is released on every other exit path.
	defer tx.Rollback(ctx)

	if err := db.AcquireAdvisoryLock(ctx, tx, "room:"+roomID); err != nil {
		return err
	}

	if err := fn(&pgxRepository{pool: r.pool, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Insert(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "guest_id", "room_id", "status", "payment_method", "check_in", "check_out").
		Values(b.UserID, b.GuestID, b.RoomID, b.Status, b.PaymentMethod, b.CheckIn, b.CheckOut).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// The bookings table carries an exclusion constraint on
		// (room_id, tstzrange(check_in, check_out)) for active rows; a
		// violation is the authoritative conflict signal if a competing
		// insert slipped past the application-level check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

const bookingJoin = "public.bookings b " +
	"LEFT JOIN public.users u ON b.user_id = u.id " +
	"JOIN public.guests g ON b.guest_id = g.id " +
	"JOIN public.rooms r ON b.room_id = r.id"

var bookingColumns = []string{
	"b.id", "b.user_id", "u.full_name", "b.guest_id", "g.full_name",
	"b.room_id", "r.number", "b.status", "b.payment_method",
	"b.check_in", "b.check_out", "b.created_at", "b.updated_at",
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.GuestID, &b.GuestName,
		&b.RoomID, &b.RoomNumber, &b.Status, &b.PaymentMethod,
		&b.CheckIn, &b.CheckOut, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From(bookingJoin).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	return scanBooking(r.q.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) ListActiveForRoom(ctx context.Context, roomID string, excludeID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns...).
		From(bookingJoin).
		Where(squirrel.Eq{"b.room_id": roomID}).
		Where(squirrel.Eq{"b.status": []Status{StatusBooked, StatusCheckedIn}})

	if excludeID != "" {
		query = query.Where(squirrel.NotEq{"b.id": excludeID})
	}

	sql, args, err := query.OrderBy("b.check_in ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active bookings query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list active bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.GuestID, &b.GuestName,
			&b.RoomID, &b.RoomNumber, &b.Status, &b.PaymentMethod,
			&b.CheckIn, &b.CheckOut, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, bookingColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From(bookingJoin)

	if filter.GuestID != "" {
		query = query.Where(squirrel.Eq{"b.guest_id": filter.GuestID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.Gt{"b.check_out": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"b.check_in": filter.To})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.check_in DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.GuestID, &b.GuestName,
			&b.RoomID, &b.RoomNumber, &b.Status, &b.PaymentMethod,
			&b.CheckIn, &b.CheckOut, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("guest_id", b.GuestID).
		Set("room_id", b.RoomID).
		Set("status", b.Status).
		Set("payment_method", b.PaymentMethod).
		Set("check_in", b.CheckIn).
		Set("check_out", b.CheckOut).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrRoomConflict
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
