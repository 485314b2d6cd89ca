package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tundex/billtracker/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// translateConstraint maps postgres integrity violations onto the
// domain error taxonomy. Anything unrecognized is returned as is.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case "bills_user_id_creditor_id_key":
			return entity.ErrDuplicateBill
		case "creditors_name_key":
			return fmt.Errorf("%w: name is taken", entity.ErrDuplicateCreditor)
		case "creditors_phone_key":
			return fmt.Errorf("%w: phone is taken", entity.ErrDuplicateCreditor)
		case "creditors_email_key":
			return fmt.Errorf("%w: email is taken", entity.ErrDuplicateCreditor)
		case "creditors_account_number_key":
			return fmt.Errorf("%w: account number is taken", entity.ErrDuplicateCreditor)
		}

	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "bills_user_id_fkey":
			return entity.ErrUserNotFound
		case "bills_creditor_id_fkey":
			return entity.ErrCreditorNotFound
		case "creditors_created_by_fkey":
			return entity.ErrUserNotFound
		case "payments_bill_id_fkey":
			return entity.ErrNotFound
		}

	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", entity.ErrInvalidArgument, pgErr.ConstraintName)
	}

	return err
}

// IsTransient reports whether err is worth retrying as a whole
// transaction: deadlocks, serialization failures and connection loss.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure:
			return true
		}

		return pgerrcode.IsConnectionException(pgErr.Code)
	}

	return pgconn.SafeToRetry(err)
}
