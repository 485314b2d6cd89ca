package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/tundex/billtracker/internal/entity"
)

// SyncUser mirrors an auth-service user into the local reference table.
func (s *Service) SyncUser(ctx context.Context, u entity.User) error {
	err := s.repo.UpsertUser(ctx, u, time.Now())
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", u.ID, err)
	}

	return nil
}

func (s *Service) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeactivateUser(ctx, id, time.Now())
	if err != nil {
		return fmt.Errorf("deactivate user %s: %w", id, err)
	}

	return nil
}
