package repositories

import (
	"encoding/json"
	"errors"
	"log"

	"payport/internal/models"

	"github.com/dgraph-io/badger/v2"
)

// RecordRepository is the persistence port the flows are built against.
// There is no partial update: callers load, transform and save the whole list.
type RecordRepository interface {
	LoadTransactions() ([]models.TransactionRecord, error)
	SaveTransactions(records []models.TransactionRecord) error
	SetSessionFlag(active bool) error
	SessionFlag() (bool, error)
}

type recordRepository struct {
	db *badger.DB
}

// NewRecordRepository returns a RecordRepository backed by the given store.
func NewRecordRepository(db *badger.DB) RecordRepository {
	if db == nil {
		panic("db is required")
	}
	return &recordRepository{db: db}
}

// LoadTransactions reads the full history. A missing key or malformed stored
// content is treated as an empty history; neither is surfaced to the caller.
func (r *recordRepository) LoadTransactions() ([]models.TransactionRecord, error) {
	var raw []byte

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(PaymentHistoryKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []models.TransactionRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.TransactionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("discarding malformed payment history: %v", err)
		return []models.TransactionRecord{}, nil
	}
	return records, nil
}

// SaveTransactions overwrites the stored history with the given list.
func (r *recordRepository) SaveTransactions(records []models.TransactionRecord) error {
	if records == nil {
		records = []models.TransactionRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(PaymentHistoryKey), data)
	})
}

// SetSessionFlag persists the admin session marker.
func (r *recordRepository) SetSessionFlag(active bool) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if !active {
			err := txn.Delete([]byte(AdminSessionKey))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return txn.Set([]byte(AdminSessionKey), []byte("true"))
	})
}

// SessionFlag reports whether an admin session is active.
func (r *recordRepository) SessionFlag() (bool, error) {
	var active bool
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(AdminSessionKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			active = string(val) == "true"
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return active, nil
}
