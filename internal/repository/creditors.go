package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/tundex/billtracker/internal/entity"
)

func (r *Repository) CreateCreditor(ctx context.Context, c entity.Creditor) (entity.Creditor, error) {
	const q = `
	INSERT INTO creditors (
		id,
		name,
		description,
		street_address,
		city,
		state,
		country,
		phone,
		email,
		bank_name,
		account_number,
		created_by,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		c.ID,
		c.Name,
		c.Description,
		c.StreetAddress,
		c.City,
		c.State,
		c.Country,
		c.Phone,
		zeronull.Text(c.Email),
		c.BankName,
		zeronull.Text(c.AccountNumber),
		c.CreatedBy,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return entity.Creditor{}, translateConstraint(err)
	}

	return c, nil
}

func (r *Repository) Creditor(ctx context.Context, id uuid.UUID) (entity.Creditor, error) {
	q := selectCreditor + " WHERE id = $1"
	return scanCreditor(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) CreditorByPhone(ctx context.Context, phone string) (entity.Creditor, error) {
	q := selectCreditor + " WHERE phone = $1"
	return scanCreditor(r.db.QueryRow(ctx, q, phone))
}

func (r *Repository) CreditorByName(ctx context.Context, name string) (entity.Creditor, error) {
	q := selectCreditor + " WHERE name = $1"
	return scanCreditor(r.db.QueryRow(ctx, q, name))
}

func (r *Repository) CreditorByEmail(ctx context.Context, email string) (entity.Creditor, error) {
	q := selectCreditor + " WHERE email = $1"
	return scanCreditor(r.db.QueryRow(ctx, q, email))
}

func (r *Repository) Creditors(ctx context.Context, limit, offset uint64) ([]entity.Creditor, error) {
	q := selectCreditor + " ORDER BY name ASC LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creditors []entity.Creditor

	for rows.Next() {
		c, err := scanCreditor(rows)
		if err != nil {
			return nil, err
		}

		creditors = append(creditors, c)
	}

	return creditors, nil
}

// UpdateCreditor applies a partial patch; nil fields stay untouched.
func (r *Repository) UpdateCreditor(
	ctx context.Context,
	id uuid.UUID,
	patch entity.CreditorPatch,
	updatedAt time.Time,
) (entity.Creditor, error) {
	stmt := sq.Update("creditors").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, street_address, city, state, country, phone," +
			" COALESCE(email, ''), bank_name, COALESCE(account_number, ''), created_by, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	stmt = applyCreditorPatch(stmt, patch)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.Creditor{}, err
	}

	c, err := scanCreditor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return entity.Creditor{}, translateConstraint(err)
	}

	return c, nil
}

func applyCreditorPatch(stmt sq.UpdateBuilder, p entity.CreditorPatch) sq.UpdateBuilder {
	if p.Name != nil {
		stmt = stmt.Set("name", *p.Name)
	}

	if p.Description != nil {
		stmt = stmt.Set("description", *p.Description)
	}

	if p.StreetAddress != nil {
		stmt = stmt.Set("street_address", *p.StreetAddress)
	}

	if p.City != nil {
		stmt = stmt.Set("city", *p.City)
	}

	if p.State != nil {
		stmt = stmt.Set("state", *p.State)
	}

	if p.Country != nil {
		stmt = stmt.Set("country", *p.Country)
	}

	if p.Phone != nil {
		stmt = stmt.Set("phone", *p.Phone)
	}

	if p.Email != nil {
		stmt = stmt.Set("email", zeronull.Text(*p.Email))
	}

	if p.BankName != nil {
		stmt = stmt.Set("bank_name", *p.BankName)
	}

	if p.AccountNumber != nil {
		stmt = stmt.Set("account_number", zeronull.Text(*p.AccountNumber))
	}

	return stmt
}

func scanCreditor(row pgx.Row) (c entity.Creditor, err error) {
	err = row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.StreetAddress,
		&c.City,
		&c.State,
		&c.Country,
		&c.Phone,
		&c.Email,
		&c.BankName,
		&c.AccountNumber,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Creditor{}, entity.ErrNotFound
		}

		return entity.Creditor{}, err
	}

	return c, nil
}
