package bill

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayforge/hotel-booking-backend/internal/db"
)

// TxRepository exposes the bill and payment operations available inside a
// bill-locked transaction.
type TxRepository interface {
	GetBill(ctx context.Context, id string) (*Bill, error)
	UpdateBillCharges(ctx context.Context, b *Bill) error
	GetPayment(ctx context.Context, id string) (*Payment, error)
	InsertPayment(ctx context.Context, p *Payment) error
	UpdatePayment(ctx context.Context, p *Payment) error
	DeletePayment(ctx context.Context, id string) error

	// SumPayments returns the authoritative sum of the payment rows
	// currently referencing the bill.
	SumPayments(ctx context.Context, billID string) (int64, error)

	// SetDerivedAmounts writes back a bill's paid and outstanding amounts.
	SetDerivedAmounts(ctx context.Context, billID string, paid, outstanding int64) error
}

type Repository interface {
	InsertBill(ctx context.Context, b *Bill) error
	GetBill(ctx context.Context, id string) (*Bill, error)
	GetBillByBooking(ctx context.Context, bookingID string) (*Bill, error)
	ListBills(ctx context.Context, filter Filter) ([]*Bill, int, error)
	DeleteBill(ctx context.Context, id string) error

	GetPayment(ctx context.Context, id string) (*Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, int, error)

	// WithBillLock runs fn inside one transaction holding advisory locks on
	// every given bill id. Ids are locked in ascending order so two
	// operations touching the same pair of bills cannot deadlock. The locks
	// are released when the transaction commits or rolls back.
	WithBillLock(ctx context.Context, billIDs []string, fn func(tx TxRepository) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
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

func (r *pgxRepository) WithBillLock(ctx context.Context, billIDs []string, fn func(tx TxRepository) error) error {
	ids := append([]string{}, billIDs...)
	sort.Strings(ids)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin bill transaction failed: %w", err)
	}
	// Rollback is a no-op after a successful commit; it guarantees the locks
	// are released on every other exit path.
	defer tx.Rollback(ctx)

	for i, id := range ids {
		if i > 0 && id == ids[i-1] {
			continue
		}
		if err := db.AcquireAdvisoryLock(ctx, tx, "bill:"+id); err != nil {
			return err
		}
	}

	if err := fn(&pgxRepository{pool: r.pool, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bill transaction failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) InsertBill(ctx context.Context, b *Bill) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bills").
		Columns(
			"user_id", "booking_id", "room_charges", "total_service_charges",
			"total_tax", "total_discount", "late_checkout_charge",
			"total_amount", "paid_amount", "outstanding_amount",
		).
		Values(
			b.UserID, b.BookingID, b.RoomCharges, b.TotalServiceCharges,
			b.TotalTax, b.TotalDiscount, b.LateCheckoutCharge,
			b.TotalAmount, b.PaidAmount, b.OutstandingAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create bill query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// booking_id carries a unique constraint enforcing one bill per
		// booking.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateBill
		}
		return fmt.Errorf("create bill failed: %w", err)
	}
	return nil
}

const billJoin = "public.bills bl LEFT JOIN public.users u ON bl.user_id = u.id"

var billColumns = []string{
	"bl.id", "bl.user_id", "u.full_name", "bl.booking_id",
	"bl.room_charges", "bl.total_service_charges", "bl.total_tax",
	"bl.total_discount", "bl.late_checkout_charge",
	"bl.total_amount", "bl.paid_amount", "bl.outstanding_amount",
	"bl.created_at", "bl.updated_at",
}

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.BookingID,
		&b.RoomCharges, &b.TotalServiceCharges, &b.TotalTax,
		&b.TotalDiscount, &b.LateCheckoutCharge,
		&b.TotalAmount, &b.PaidAmount, &b.OutstandingAmount,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan bill failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetBill(ctx context.Context, id string) (*Bill, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(billColumns...).
		From(billJoin).
		Where(squirrel.Eq{"bl.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bill query failed: %w", err)
	}

	return scanBill(r.q.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetBillByBooking(ctx context.Context, bookingID string) (*Bill, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(billColumns...).
		From(billJoin).
		Where(squirrel.Eq{"bl.booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bill by booking query failed: %w", err)
	}

	return scanBill(r.q.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) ListBills(ctx context.Context, filter Filter) ([]*Bill, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, billColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From(billJoin)

	if filter.BookingID != "" {
		query = query.Where(squirrel.Eq{"bl.booking_id": filter.BookingID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"bl.user_id": filter.UserID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.OrderBy("bl.created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bills query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bills failed: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	var total int
	for rows.Next() {
		var b Bill
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.BookingID,
			&b.RoomCharges, &b.TotalServiceCharges, &b.TotalTax,
			&b.TotalDiscount, &b.LateCheckoutCharge,
			&b.TotalAmount, &b.PaidAmount, &b.OutstandingAmount,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan bill failed: %w", err)
		}
		bills = append(bills, &b)
	}

	return bills, total, nil
}

// UpdateBillCharges writes a bill's editable columns. The derived paid and
// outstanding amounts are excluded; SetDerivedAmounts owns those.
func (r *pgxRepository) UpdateBillCharges(ctx context.Context, b *Bill) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bills").
		Set("user_id", b.UserID).
		Set("room_charges", b.RoomCharges).
		Set("total_service_charges", b.TotalServiceCharges).
		Set("total_tax", b.TotalTax).
		Set("total_discount", b.TotalDiscount).
		Set("late_checkout_charge", b.LateCheckoutCharge).
		Set("total_amount", b.TotalAmount).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update bill query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update bill failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteBill(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bills").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete bill query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		// Payments are not cascaded; deleting a bill that still has payment
		// rows trips the foreign key.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasPayments
		}
		return fmt.Errorf("delete bill failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var paymentColumns = []string{"id", "bill_id", "method", "paid_amount", "paid_at", "created_at"}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.BillID, &p.Method, &p.PaidAmount, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) GetPayment(ctx context.Context, id string) (*Payment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(paymentColumns...).
		From("public.payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get payment query failed: %w", err)
	}

	return scanPayment(r.q.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, paymentColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From("public.payments")

	if filter.BillID != "" {
		query = query.Where(squirrel.Eq{"bill_id": filter.BillID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.OrderBy("paid_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list payments query failed: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments failed: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	var total int
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.BillID, &p.Method, &p.PaidAmount, &p.PaidAt, &p.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan payment failed: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, total, nil
}

func (r *pgxRepository) InsertPayment(ctx context.Context, p *Payment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.payments").
		Columns("bill_id", "method", "paid_amount", "paid_at").
		Values(p.BillID, p.Method, p.PaidAmount, p.PaidAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create payment query failed: %w", err)
	}

	if err := r.q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("create payment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdatePayment(ctx context.Context, p *Payment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.payments").
		Set("bill_id", p.BillID).
		Set("method", p.Method).
		Set("paid_amount", p.PaidAmount).
		Set("paid_at", p.PaidAt).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update payment query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *pgxRepository) DeletePayment(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete payment query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete payment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *pgxRepository) SumPayments(ctx context.Context, billID string) (int64, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("COALESCE(SUM(paid_amount), 0)").
		From("public.payments").
		Where(squirrel.Eq{"bill_id": billID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum payments query failed: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum payments failed: %w", err)
	}
	return total, nil
}

func (r *pgxRepository) SetDerivedAmounts(ctx context.Context, billID string, paid, outstanding int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bills").
		Set("paid_amount", paid).
		Set("outstanding_amount", outstanding).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": billID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set bill amounts query failed: %w", err)
	}

	ct, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set bill amounts failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
