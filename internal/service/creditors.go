package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/tundex/billtracker/internal/entity"
)

func (s *Service) CreateCreditor(ctx context.Context, c entity.Creditor) (entity.Creditor, error) {
	caller, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Creditor{}, err
	}

	err = c.Validate()
	if err != nil {
		return entity.Creditor{}, err
	}

	now := time.Now()

	c = c.Normalize()
	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedBy = caller.ID
	c.CreatedAt = now
	c.UpdatedAt = now

	c, err = s.repo.CreateCreditor(ctx, c)
	if err != nil {
		return entity.Creditor{}, fmt.Errorf("create creditor: %w", err)
	}

	slog.InfoContext(ctx, "creditor registered", "creditor_id", c.ID, "name", c.Name)

	return c, nil
}

func (s *Service) Creditor(ctx context.Context, id uuid.UUID) (entity.Creditor, error) {
	c, err := s.repo.Creditor(ctx, id)
	if err != nil {
		return entity.Creditor{}, fmt.Errorf("get creditor %s: %w", id, err)
	}

	return c, nil
}

// FindCreditor looks a creditor up by exactly one of phone, name or
// email, in that order of precedence.
func (s *Service) FindCreditor(ctx context.Context, phone, name, email string) (entity.Creditor, error) {
	switch {
	case phone != "":
		c, err := s.repo.CreditorByPhone(ctx, phone)
		if err != nil {
			return entity.Creditor{}, fmt.Errorf("get creditor by phone: %w", err)
		}

		return c, nil

	case name != "":
		c, err := s.repo.CreditorByName(ctx, name)
		if err != nil {
			return entity.Creditor{}, fmt.Errorf("get creditor by name: %w", err)
		}

		return c, nil

	case email != "":
		c, err := s.repo.CreditorByEmail(ctx, email)
		if err != nil {
			return entity.Creditor{}, fmt.Errorf("get creditor by email: %w", err)
		}

		return c, nil

	default:
		return entity.Creditor{}, fmt.Errorf("%w: provide a phone number, name or email address", entity.ErrInvalidArgument)
	}
}

func (s *Service) Creditors(ctx context.Context, limit, offset uint64) ([]entity.Creditor, error) {
	const defaultLimit = 100

	if limit == 0 {
		limit = defaultLimit
	}

	creditors, err := s.repo.Creditors(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get creditors: %w", err)
	}

	return creditors, nil
}

func (s *Service) UpdateCreditor(ctx context.Context, id uuid.UUID, patch entity.CreditorPatch) (entity.Creditor, error) {
	if patch.AccountNumber != nil && *patch.AccountNumber != "" && patch.BankName == nil {
		return entity.Creditor{}, fmt.Errorf("%w: an account number requires a bank name", entity.ErrInvalidArgument)
	}

	c, err := s.repo.UpdateCreditor(ctx, id, patch, time.Now())
	if err != nil {
		return entity.Creditor{}, fmt.Errorf("update creditor %s: %w", id, err)
	}

	return c, nil
}
