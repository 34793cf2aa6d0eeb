package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-sitting-service/internal/domain/sitters"
)

type SittersRepo struct {
	db *sql.DB
}

func NewSittersRepo(db *sql.DB) *SittersRepo {
	return &SittersRepo{db: db}
}

func (r *SittersRepo) Create(ctx context.Context, s sitters.Sitter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sitters (
			id, firstname, lastname, gender, email, phone, address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID,
		s.FirstName,
		s.LastName,
		string(s.Gender),
		s.Email,
		s.Phone,
		s.Address,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SittersRepo) GetByID(ctx context.Context, id string) (sitters.Sitter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sitters.Sitter{}, sitters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, firstname, lastname, gender, email, phone, address, created_at, updated_at
		FROM sitters
		WHERE id = $1
	`, id)

	return scanSitter(row.Scan)
}

func (r *SittersRepo) List(ctx context.Context) ([]sitters.Sitter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, firstname, lastname, gender, email, phone, address, created_at, updated_at
		FROM sitters
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sitters.Sitter, 0)
	for rows.Next() {
		s, err := scanSitter(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SittersRepo) Update(ctx context.Context, s sitters.Sitter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sitters
		SET firstname = $2, lastname = $3, gender = $4, email = $5, phone = $6, address = $7, updated_at = $8
		WHERE id = $1
	`,
		s.ID,
		s.FirstName,
		s.LastName,
		string(s.Gender),
		s.Email,
		s.Phone,
		s.Address,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sitters.ErrNotFound
	}
	return nil
}

func (r *SittersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sitters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sitters.ErrNotFound
	}
	return nil
}

func scanSitter(scan func(dest ...any) error) (sitters.Sitter, error) {
	var s sitters.Sitter
	var gender string
	if err := scan(&s.ID, &s.FirstName, &s.LastName, &gender, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return sitters.Sitter{}, sitters.ErrNotFound
		}
		return sitters.Sitter{}, err
	}
	s.Gender = sitters.Gender(gender)
	return s, nil
}
