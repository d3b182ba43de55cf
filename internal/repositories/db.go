// Package repositories provides the data access layer. All state lives in a
// local embedded key-value store (BadgerDB); there is no external database.
package repositories

import (
	"log"

	"payport/internal/config"

	"github.com/dgraph-io/badger/v2"
)

// DB is the global store handle used across the application.
var DB *badger.DB

// Logical keys. The whole transaction history is one JSON array under a
// single key; the admin session flag lives under a second key.
const (
	PaymentHistoryKey = "paymentHistory"
	AdminSessionKey   = "adminSession"
)

// InitDB opens the embedded store at DATA_DIR (default ./data).
func InitDB() error {
	path := config.GetEnv("DATA_DIR", "./data")

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logging is too chatty for request-scoped logs

	db, err := badger.Open(opts)
	if err != nil {
		return err
	}

	DB = db
	log.Printf("embedded store opened at %s", path)
	return nil
}

// CloseDB closes the global store handle.
func CloseDB() {
	if DB == nil {
		return
	}
	if err := DB.Close(); err != nil {
		log.Printf("failed to close store: %v", err)
	}
}
