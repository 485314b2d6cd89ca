package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tundex/billtracker/internal/entity"
)

// UpsertUser maintains the local users reference table fed from auth
// service events. Bills hold foreign keys against it.
func (r *Repository) UpsertUser(ctx context.Context, u entity.User, now time.Time) error {
	const q = `
	INSERT INTO users (id, first_name, last_name, phone, email, role, active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		role = EXCLUDED.role,
		active = EXCLUDED.active,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, q, u.ID, u.FirstName, u.LastName, u.Phone, u.Email, u.Role, u.Active, now)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeactivateUser(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `UPDATE users SET active = FALSE, updated_at = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, q, now, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	const q = `SELECT id, first_name, last_name, phone, email, role, active FROM users WHERE id = $1`

	var u entity.User

	err := r.db.QueryRow(ctx, q, id).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.Email,
		&u.Role,
		&u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}
