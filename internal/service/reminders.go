package service

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RemindOutstandingDebts emits a reminder event for every unpaid bill
// older than the configured minimum age. Run periodically as a job.
func (s *Service) RemindOutstandingDebts(ctx context.Context) error {
	cutoff := time.Now().Add(-s.debtReminderMinAge)

	bills, err := s.repo.OutstandingBills(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("get outstanding bills: %w", err)
	}

	var errs []error

	for _, b := range bills {
		if b.Paid {
			errs = append(errs, fmt.Errorf("bill %s reported outstanding but is paid", b.ID))
			continue
		}

		s.producer.SendDebtReminder(ctx, b.ID, b.UserID, b.CurrentBalance)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
