package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tundex/billtracker/internal/entity"
)

// CreateBill inserts one bill row. current_balance and paid are
// generated by the database and scanned back, never supplied.
func (r *Repository) CreateBill(ctx context.Context, bill entity.Bill) (entity.Bill, error) {
	const q = `
	INSERT INTO bills (
		id,
		user_id,
		creditor_id,
		description,
		total_credit_amount,
		total_paid_amount,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING current_balance, paid
	`

	err := r.db.QueryRow(
		ctx,
		q,
		bill.ID,
		bill.UserID,
		bill.CreditorID,
		bill.Description,
		bill.TotalCreditAmount,
		bill.TotalPaidAmount,
		bill.CreatedAt,
		bill.UpdatedAt,
	).Scan(&bill.CurrentBalance, &bill.Paid)
	if err != nil {
		return entity.Bill{}, translateConstraint(err)
	}

	return bill, nil
}

func (r *Repository) Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error) {
	q := selectBill + " WHERE id = $1"
	return scanBill(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) BillsByUser(
	ctx context.Context,
	userID uuid.UUID,
	f entity.BillFilter,
) ([]entity.Bill, int, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"creditor_id",
		"description",
		"total_credit_amount",
		"total_paid_amount",
		"current_balance",
		"paid",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("bills").Where(sq.Eq{"user_id": userID}).PlaceholderFormat(sq.Dollar)

	if f.Paid != nil {
		stmt = stmt.Where(sq.Eq{"paid": *f.Paid})
	}

	stmt = stmt.
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bills := make([]entity.Bill, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var b entity.Bill

		var count int

		err = rows.Scan(
			&b.ID,
			&b.UserID,
			&b.CreditorID,
			&b.Description,
			&b.TotalCreditAmount,
			&b.TotalPaidAmount,
			&b.CurrentBalance,
			&b.Paid,
			&b.CreatedAt,
			&b.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		bills = append(bills, b)
	}

	return bills, totalCount, nil
}

// OutstandingBills returns unpaid bills opened before the cutoff.
func (r *Repository) OutstandingBills(ctx context.Context, createdBefore time.Time) ([]entity.Bill, error) {
	q := selectBill + " WHERE NOT paid AND created_at < $1"

	rows, err := r.db.Query(ctx, q, createdBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []entity.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}

		bills = append(bills, b)
	}

	return bills, nil
}

// DeletePaidBill removes a bill only if its paid flag is set, together
// with its payments via the FK cascade. ErrNotFound covers both a
// missing bill and an unpaid one; the caller decides which it was.
func (r *Repository) DeletePaidBill(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM bills WHERE id = $1 AND paid`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanBill(row pgx.Row) (b entity.Bill, err error) {
	err = row.Scan(
		&b.ID,
		&b.UserID,
		&b.CreditorID,
		&b.Description,
		&b.TotalCreditAmount,
		&b.TotalPaidAmount,
		&b.CurrentBalance,
		&b.Paid,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Bill{}, entity.ErrNotFound
		}

		return entity.Bill{}, err
	}

	return b, nil
}
