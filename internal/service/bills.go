package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tundex/billtracker/internal/entity"
)

// CreateBill opens a debt between a user and a creditor. Missing
// references and the one-bill-per-pair rule surface as integrity
// errors from storage, never retried.
func (s *Service) CreateBill(
	ctx context.Context,
	userID, creditorID uuid.UUID,
	totalCredit, totalPaid decimal.Decimal,
	description string,
) (entity.Bill, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	if caller.ID != userID && !caller.Privileged() {
		return entity.Bill{}, fmt.Errorf("%w: user %s may not open bills for %s", entity.ErrForbidden, caller.ID, userID)
	}

	err = entity.ValidateAmount(totalCredit)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("total credit amount: %w", err)
	}

	if !totalPaid.IsZero() {
		err = entity.ValidateAmount(totalPaid)
		if err != nil {
			return entity.Bill{}, fmt.Errorf("total paid amount: %w", err)
		}
	}

	now := time.Now()

	bill := entity.Bill{
		ID:                uuid.Must(uuid.NewV4()),
		UserID:            userID,
		CreditorID:        creditorID,
		Description:       description,
		TotalCreditAmount: totalCredit,
		TotalPaidAmount:   totalPaid,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	bill, err = s.repo.CreateBill(ctx, bill)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("create bill: %w", err)
	}

	slog.InfoContext(ctx, "bill opened",
		"bill_id", bill.ID, "creditor_id", creditorID, "credit_amount", totalCredit)

	return bill, nil
}

func (s *Service) Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Bill{}, err
	}

	bill, err := s.repo.Bill(ctx, id)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", id, err)
	}

	if bill.UserID != caller.ID && !caller.Privileged() {
		return entity.Bill{}, fmt.Errorf("%w: user %s is not a party to bill %s", entity.ErrForbidden, caller.ID, id)
	}

	return bill, nil
}

// Bills returns a user's bills. An empty result is not an error.
func (s *Service) Bills(ctx context.Context, userID uuid.UUID, f entity.BillFilter) ([]entity.Bill, int, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.ID != userID && !caller.Privileged() {
		return nil, 0, fmt.Errorf("%w: user %s may not list bills of %s", entity.ErrForbidden, caller.ID, userID)
	}

	f = normalizeBillFilter(f)

	bills, total, err := s.repo.BillsByUser(ctx, userID, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get bills: %w", err)
	}

	return bills, total, nil
}

// DeleteBill removes a fully paid bill together with its payments.
// Deleting an outstanding bill is forbidden for every role.
func (s *Service) DeleteBill(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	bill, err := s.repo.Bill(ctx, id)
	if err != nil {
		return fmt.Errorf("get bill %s: %w", id, err)
	}

	if bill.UserID != caller.ID && !caller.Privileged() {
		return fmt.Errorf("%w: user %s is not a party to bill %s", entity.ErrForbidden, caller.ID, id)
	}

	if !bill.Paid {
		return fmt.Errorf("%w: bill %s balance is %s", entity.ErrOutstandingDebt, id, bill.CurrentBalance)
	}

	err = s.repo.DeletePaidBill(ctx, id)
	if err != nil {
		return fmt.Errorf("delete bill %s: %w", id, err)
	}

	slog.InfoContext(ctx, "bill deleted", "bill_id", id)

	return nil
}

func normalizeBillFilter(f entity.BillFilter) entity.BillFilter {
	const defaultLimit = 100

	if f.Limit == 0 {
		f.Limit = defaultLimit
	}

	if f.Page == 0 {
		f.Page = 1
	}

	if !f.SortBy.IsValid() {
		f.SortBy = entity.SortByCreatedAt
	}

	if !f.OrderBy.IsValid() {
		f.OrderBy = entity.DESC
	}

	return f
}
