package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tundex/billtracker/internal/entity"
)

// The increment is a single UPDATE expression evaluated by the storage
// engine, never a read-modify-write in application code; concurrent
// payments against one bill serialize on the row lock it takes. Which
// total a payment touches is decided solely by its issuer.
const (
	incrementPaidTotal = `
	UPDATE bills
	SET total_paid_amount = total_paid_amount + $1, updated_at = $2
	WHERE id = $3
	RETURNING id, user_id, creditor_id, description, total_credit_amount, total_paid_amount,
		current_balance, paid, created_at, updated_at`

	incrementCreditTotal = `
	UPDATE bills
	SET total_credit_amount = total_credit_amount + $1, updated_at = $2
	WHERE id = $3
	RETURNING id, user_id, creditor_id, description, total_credit_amount, total_paid_amount,
		current_balance, paid, created_at, updated_at`

	insertPayment = `
	INSERT INTO payments (id, bill_id, issuer, amount, note, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`
)

// ApplyPayment applies one payment to its bill: the bill total update
// and the payment insert happen in a single transaction, so both
// commit together or neither is visible. Returns the bill as of after
// the increment. A missing bill surfaces as ErrNotFound and nothing is
// written.
func (r *Repository) ApplyPayment(ctx context.Context, p entity.Payment) (entity.Payment, entity.Bill, error) {
	var q string

	switch p.Issuer {
	case entity.IssuerUser:
		q = incrementPaidTotal
	case entity.IssuerCreditor:
		q = incrementCreditTotal
	default:
		return entity.Payment{}, entity.Bill{}, p.Issuer.Validate()
	}

	var bill entity.Bill

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error

		bill, err = scanBill(tx.QueryRow(ctx, q, p.Amount, p.CreatedAt, p.BillID))
		if err != nil {
			return fmt.Errorf("increment bill total: %w", err)
		}

		_, err = tx.Exec(ctx, insertPayment, p.ID, p.BillID, p.Issuer, p.Amount, p.Note, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.Payment{}, entity.Bill{}, translateConstraint(err)
	}

	return p, bill, nil
}

func (r *Repository) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) PaymentsByBill(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error) {
	q := selectPayment + " WHERE bill_id = $1 ORDER BY created_at DESC"
	return r.queryPayments(ctx, q, billID)
}

// PaymentsByUser joins through the user's bills.
func (r *Repository) PaymentsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	q := selectPayment + ` WHERE bill_id IN (
		SELECT id FROM bills WHERE user_id = $1
	) ORDER BY created_at DESC`

	return r.queryPayments(ctx, q, userID)
}

func (r *Repository) queryPayments(ctx context.Context, q string, arg any) ([]entity.Payment, error) {
	rows, err := r.db.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []entity.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.BillID,
		&p.Issuer,
		&p.Amount,
		&p.Note,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}
