package amenity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Amenity) error
	GetByID(ctx context.Context, id string) (*Amenity, error)
	List(ctx context.Context, filter Filter) ([]*Amenity, int, error)
	Update(ctx context.Context, a *Amenity) error
	Delete(ctx context.Context, id string) error

	CreateUsage(ctx context.Context, u *Usage) error
	ListUsagesForBooking(ctx context.Context, bookingID string) ([]*Usage, error)
	DeleteUsage(ctx context.Context, id string) error

	// SumForBooking returns the total recorded service charges for a booking.
	SumForBooking(ctx context.Context, bookingID string) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, a *Amenity) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.amenities").
		Columns("name", "description", "unit_price").
		Values(a.Name, a.Description, a.UnitPrice).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create amenity query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("create amenity failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Amenity, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "unit_price", "created_at").
		From("public.amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get amenity query failed: %w", err)
	}

	var a Amenity
	err = r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Name, &a.Description, &a.UnitPrice, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get amenity failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Amenity, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "description", "unit_price", "created_at", "count(*) OVER() as total_count").
		From("public.amenities")

	if filter.Keyword != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Keyword + "%"})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	sql, args, err := query.OrderBy("name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list amenities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list amenities failed: %w", err)
	}
	defer rows.Close()

	var amenities []*Amenity
	var total int
	for rows.Next() {
		var a Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.UnitPrice, &a.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan amenity failed: %w", err)
		}
		amenities = append(amenities, &a)
	}

	return amenities, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, a *Amenity) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.amenities").
		Set("name", a.Name).
		Set("description", a.Description).
		Set("unit_price", a.UnitPrice).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update amenity query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update amenity failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete amenity query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete amenity failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateUsage(ctx context.Context, u *Usage) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.service_usages").
		Columns("amenity_id", "booking_id", "quantity", "amount", "used_at").
		Values(u.AmenityID, u.BookingID, u.Quantity, u.Amount, u.UsedAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service usage query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("create service usage failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListUsagesForBooking(ctx context.Context, bookingID string) ([]*Usage, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"su.id", "su.amenity_id", "a.name", "su.booking_id",
		"su.quantity", "su.amount", "su.used_at", "su.created_at",
	).
		From("public.service_usages su").
		Join("public.amenities a ON su.amenity_id = a.id").
		Where(squirrel.Eq{"su.booking_id": bookingID}).
		OrderBy("su.used_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list service usages query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list service usages failed: %w", err)
	}
	defer rows.Close()

	var usages []*Usage
	for rows.Next() {
		var u Usage
		if err := rows.Scan(
			&u.ID, &u.AmenityID, &u.AmenityName, &u.BookingID,
			&u.Quantity, &u.Amount, &u.UsedAt, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service usage failed: %w", err)
		}
		usages = append(usages, &u)
	}

	return usages, nil
}

func (r *pgxRepository) DeleteUsage(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.service_usages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete service usage query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete service usage failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrUsageNotFound
	}
	return nil
}

func (r *pgxRepository) SumForBooking(ctx context.Context, bookingID string) (int64, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("COALESCE(SUM(amount), 0)").
		From("public.service_usages").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum service usages query failed: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum service usages failed: %w", err)
	}
	return total, nil
}
