// Package dashboard derives the admin overview counters. The numbers are
// recomputed from the full record list on every call; no aggregate is stored.
package dashboard

import (
	"context"
	"fmt"

	"payport/internal/models"
	"payport/internal/repositories"
)

type Service interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Users(ctx context.Context) ([]models.UserEntry, error)
	DeleteUser(ctx context.Context, email string) error
}

type service struct {
	records repositories.RecordRepository
}

// NewService creates a new dashboard service.
func NewService(records repositories.RecordRepository) Service {
	if records == nil {
		panic("records repository is required")
	}
	return &service{records: records}
}

// Stats computes the dashboard counters. A record whose amount does not parse
// contributes zero to the total.
func (s *service) Stats(ctx context.Context) (*models.DashboardStats, error) {
	history, err := s.records.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	stats := &models.DashboardStats{TotalTransactions: len(history)}
	for i := range history {
		switch history[i].Status {
		case models.StatusPending:
			stats.PendingPayments++
		case models.StatusVerified:
			stats.VerifiedPayments++
		}
		stats.TotalAmount += history[i].AmountValue()
	}
	return stats, nil
}

// Users projects the user-management rows out of the transaction history.
// There is no independent user store; this mirrors the original portal, which
// read its "users" from the same storage key as transactions (see DESIGN.md).
func (s *service) Users(ctx context.Context) ([]models.UserEntry, error) {
	history, err := s.records.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	users := make([]models.UserEntry, 0, len(history))
	for i := range history {
		users = append(users, models.UserEntry{
			UserName: history[i].UserName,
			Email:    history[i].Email,
		})
	}
	return users, nil
}

// DeleteUser removes every record submitted under the given email and
// rewrites the shared key. Deleting a "user" therefore deletes their
// transactions too; the discrepancy is inherited from the original and is
// flagged in DESIGN.md rather than silently redesigned.
func (s *service) DeleteUser(ctx context.Context, email string) error {
	history, err := s.records.LoadTransactions()
	if err != nil {
		return fmt.Errorf("failed to load payment history: %w", err)
	}

	kept := history[:0]
	for i := range history {
		if history[i].Email != email {
			kept = append(kept, history[i])
		}
	}
	if len(kept) == len(history) {
		return nil
	}

	if err := s.records.SaveTransactions(kept); err != nil {
		return fmt.Errorf("failed to save payment history: %w", err)
	}
	return nil
}
