package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Issuer is the party whose contribution a payment represents. A user
// payment increases the bill's total_paid_amount, a creditor payment
// increases its total_credit_amount.
type Issuer string

const (
	IssuerUser     Issuer = "user"
	IssuerCreditor Issuer = "creditor"
)

func (i Issuer) String() string {
	return string(i)
}

func (i Issuer) Validate() error {
	switch i {
	case IssuerUser, IssuerCreditor:
		return nil
	default:
		return fmt.Errorf("%w: %q must be %q or %q", ErrInvalidIssuer, i, IssuerUser, IssuerCreditor)
	}
}

// Payment is an append-only ledger entry applied to a bill. Payments
// are immutable once created; corrections are new offsetting payments.
type Payment struct {
	ID        uuid.UUID
	BillID    uuid.UUID
	Issuer    Issuer
	Amount    decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// ValidateAmount reports whether amount is usable as a monetary value:
// strictly positive with at most 2 fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount %s must be positive", ErrInvalidArgument, amount)
	}

	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount %s must have at most 2 decimal places", ErrInvalidArgument, amount)
	}

	return nil
}
