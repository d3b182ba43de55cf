package repositories

import (
	"testing"

	"payport/internal/models"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordRepository_LoadEmpty(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))

	records, err := repo.LoadTransactions()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))

	records := []models.TransactionRecord{
		{TransactionID: "TXN-2222222222", Amount: "250", Status: models.StatusPending},
		{TransactionID: "TXN-1111111111", Amount: "100", Status: models.StatusVerified},
	}
	require.NoError(t, repo.SaveTransactions(records))

	loaded, err := repo.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestRecordRepository_SaveOverwrites(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))

	require.NoError(t, repo.SaveTransactions([]models.TransactionRecord{
		{TransactionID: "TXN-1111111111"},
		{TransactionID: "TXN-2222222222"},
	}))
	require.NoError(t, repo.SaveTransactions([]models.TransactionRecord{
		{TransactionID: "TXN-3333333333"},
	}))

	loaded, err := repo.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "TXN-3333333333", loaded[0].TransactionID)
}

func TestRecordRepository_MalformedContentTreatedAsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(PaymentHistoryKey), []byte("{not json["))
	}))

	records, err := repo.LoadTransactions()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordRepository_SessionFlag(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t))

	active, err := repo.SessionFlag()
	require.NoError(t, err)
	assert.False(t, active, "flag should start down")

	require.NoError(t, repo.SetSessionFlag(true))
	active, err = repo.SessionFlag()
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, repo.SetSessionFlag(false))
	active, err = repo.SessionFlag()
	require.NoError(t, err)
	assert.False(t, active)

	// Clearing an already-clear flag is fine
	require.NoError(t, repo.SetSessionFlag(false))
}
