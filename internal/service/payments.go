package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/repository"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// CreatePayment validates the payment, then applies it to the bill and
// persists it as one atomic unit. Validation failures never touch
// storage; only transient storage errors are retried, integrity
// violations surface immediately.
func (s *Service) CreatePayment(
	ctx context.Context,
	billID uuid.UUID,
	issuer entity.Issuer,
	amount decimal.Decimal,
	note string,
) (entity.Payment, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	err = issuer.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	err = entity.ValidateAmount(amount)
	if err != nil {
		return entity.Payment{}, err
	}

	bill, err := s.repo.Bill(ctx, billID)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get bill %s: %w", billID, err)
	}

	if bill.UserID != caller.ID && !caller.Privileged() {
		return entity.Payment{}, fmt.Errorf("%w: user %s is not a party to bill %s", entity.ErrForbidden, caller.ID, billID)
	}

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    billID,
		Issuer:    issuer,
		Amount:    amount,
		Note:      note,
		CreatedAt: time.Now(),
	}

	var updated entity.Bill

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewFibonacci(retryBaseDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error

		p, updated, err = s.repo.ApplyPayment(ctx, p)
		if err != nil && repository.IsTransient(err) {
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return entity.Payment{}, fmt.Errorf("apply payment to bill %s: %w", billID, err)
	}

	s.producer.SendPaymentRecorded(ctx, p.ID, billID, updated.UserID,
		issuer.String(), amount, updated.CurrentBalance, updated.Paid)

	slog.InfoContext(ctx, "payment recorded",
		"payment_id", p.ID, "bill_id", billID, "issuer", issuer, "amount", amount)

	return p, nil
}

// Payments returns a user's payments, joined through their bills.
func (s *Service) Payments(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if caller.ID != userID && !caller.Privileged() {
		return nil, fmt.Errorf("%w: user %s may not list payments of %s", entity.ErrForbidden, caller.ID, userID)
	}

	payments, err := s.repo.PaymentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// BillPayments returns every payment recorded against one bill.
func (s *Service) BillPayments(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error) {
	_, err := s.Bill(ctx, billID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.PaymentsByBill(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("get bill payments: %w", err)
	}

	return payments, nil
}
