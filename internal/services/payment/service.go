// Package payment implements the submission flow: validate the form, sit
// through the simulated processing delay, mint a transaction id and persist
// the new record at the front of the history.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"payport/internal/models"
	"payport/internal/repositories"
	"payport/internal/validation"
)

// DefaultProcessingDelay mirrors the original portal's fixed 3 second wait.
const DefaultProcessingDelay = 3 * time.Second

type Service interface {
	Submit(ctx context.Context, req Request) (*models.TransactionRecord, error)
	LookupAccountName(accountNumber string) string
	History(ctx context.Context) ([]models.TransactionRecord, error)
}

type service struct {
	records repositories.RecordRepository
	config  Config

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewService creates a new payment service. The random source is injected so
// tests can supply a deterministic sequence.
func NewService(records repositories.RecordRepository, rng *rand.Rand, cfg Config) Service {
	if records == nil {
		panic("records repository is required")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.ProcessingDelay < 0 {
		cfg.ProcessingDelay = DefaultProcessingDelay
	}
	return &service{
		records: records,
		config:  cfg,
		rng:     rng,
	}
}

// Submit runs one payment through the simulated gateway. On success the new
// record is prepended to the stored history and returned with status pending.
func (s *service) Submit(ctx context.Context, req Request) (*models.TransactionRecord, error) {
	if errs := validation.ValidatePayment(validation.PaymentInput(req)); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if err := s.waitProcessing(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessingAborted, err)
	}

	record := models.TransactionRecord{
		TransactionID: s.generateTransactionID(),
		AccountNumber: req.AccountNumber,
		Bank:          req.Bank,
		AccountName:   req.AccountName,
		UserName:      req.UserName,
		Email:         req.Email,
		Amount:        req.Amount,
		Timestamp:     time.Now().Format("1/2/2006, 3:04:05 PM"),
		Status:        models.StatusPending,
	}

	history, err := s.records.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	// Newest first.
	history = append([]models.TransactionRecord{record}, history...)

	if err := s.records.SaveTransactions(history); err != nil {
		return nil, fmt.Errorf("failed to save payment history: %w", err)
	}

	return &record, nil
}

// LookupAccountName simulates the external account-name lookup: once the
// account number reaches exactly 10 digits a name is picked uniformly from
// the fixed pool. Anything else resolves to nothing.
func (s *service) LookupAccountName(accountNumber string) string {
	if len(accountNumber) != 10 {
		return ""
	}
	for _, r := range accountNumber {
		if r < '0' || r > '9' {
			return ""
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return models.AccountNames[s.rng.Intn(len(models.AccountNames))]
}

// History returns the stored list, newest first.
func (s *service) History(ctx context.Context) ([]models.TransactionRecord, error) {
	return s.records.LoadTransactions()
}

// waitProcessing blocks for the configured delay, honoring cancellation.
func (s *service) waitProcessing(ctx context.Context) error {
	if s.config.ProcessingDelay == 0 {
		return nil
	}
	timer := time.NewTimer(s.config.ProcessingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateTransactionID mints TXN- followed by 10 pseudo-random decimal
// digits. Collisions against existing ids are not checked; the probability is
// treated as negligible for this simulation.
func (s *service) generateTransactionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("TXN-%d", 1_000_000_000+s.rng.Int63n(9_000_000_000))
}
