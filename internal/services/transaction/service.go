// Package transaction covers reads and the single permitted mutation of
// stored records: the pending -> verified status transition.
package transaction

import (
	"context"
	"fmt"

	"payport/internal/models"
	"payport/internal/repositories"
)

type Service interface {
	List(ctx context.Context) ([]models.TransactionRecord, error)
	Get(ctx context.Context, id string) (*models.TransactionRecord, error)
	Verify(ctx context.Context, id string) error
}

// ReceiptInvalidator is notified when a record changes, so any cached
// rendering of it can be dropped.
type ReceiptInvalidator interface {
	Invalidate(transactionID string)
}

type service struct {
	records     repositories.RecordRepository
	invalidator ReceiptInvalidator
}

// NewService creates a new transaction service. The invalidator may be nil.
func NewService(records repositories.RecordRepository, invalidator ReceiptInvalidator) Service {
	if records == nil {
		panic("records repository is required")
	}
	return &service{records: records, invalidator: invalidator}
}

// List returns all stored records in insertion order (newest first).
func (s *service) List(ctx context.Context) ([]models.TransactionRecord, error) {
	return s.records.LoadTransactions()
}

// Get returns the record with the given id, or ErrTransactionNotFound.
func (s *service) Get(ctx context.Context, id string) (*models.TransactionRecord, error) {
	history, err := s.records.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}
	for i := range history {
		if history[i].TransactionID == id {
			record := history[i]
			return &record, nil
		}
	}
	return nil, ErrTransactionNotFound
}

// Verify flips the matching record's status to verified and rewrites the full
// list. An unknown id is a silent no-op; verifying twice is the same as
// verifying once. No other field is touched.
func (s *service) Verify(ctx context.Context, id string) error {
	history, err := s.records.LoadTransactions()
	if err != nil {
		return fmt.Errorf("failed to load payment history: %w", err)
	}

	changed := false
	for i := range history {
		if history[i].TransactionID == id && history[i].Status != models.StatusVerified {
			history[i].Status = models.StatusVerified
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.records.SaveTransactions(history); err != nil {
		return fmt.Errorf("failed to save payment history: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(id)
	}
	return nil
}
