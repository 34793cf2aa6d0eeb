package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-sitting-service/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (
			id, owner_id, start_time, duration_minutes, cancelled,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		b.ID,
		b.OwnerID,
		b.StartTime,
		b.DurationMinutes,
		b.Cancelled,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (bookings.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return bookings.Booking{}, bookings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, start_time, duration_minutes, cancelled, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`, id)

	var b bookings.Booking
	if err := row.Scan(&b.ID, &b.OwnerID, &b.StartTime, &b.DurationMinutes, &b.Cancelled, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return bookings.Booking{}, bookings.ErrNotFound
		}
		return bookings.Booking{}, err
	}
	return b, nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, start_time, duration_minutes, cancelled, created_at, updated_at
		FROM bookings
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		var b bookings.Booking
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.StartTime, &b.DurationMinutes, &b.Cancelled, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingsRepo) Update(ctx context.Context, b bookings.Booking) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET owner_id = $2, start_time = $3, duration_minutes = $4, cancelled = $5, updated_at = $6
		WHERE id = $1
	`,
		b.ID,
		b.OwnerID,
		b.StartTime,
		b.DurationMinutes,
		b.Cancelled,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return bookings.ErrNotFound
	}
	return nil
}

func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return bookings.ErrNotFound
	}
	return nil
}
